package main

import (
	"errors"
	"log/slog"

	"github.com/nao1215/wordcount/internal/config"
	"github.com/nao1215/wordcount/internal/pipeline"
	"github.com/nao1215/wordcount/internal/queue"
	"github.com/nao1215/wordcount/internal/report"
	"github.com/spf13/cobra"
)

// NewBenchCmd creates the bench command.
func NewBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [FILES...]",
		Short: "Compare single-threaded and multi-threaded counting time",
		Long: `Bench counts the same files repeatedly, alternating a run with one
worker and a run with --threads workers. It prints the time of every
trial, the minimum of each series and the speedup, followed by the
most frequent words of the last run.

The benchmark stops at the first run in which a file could not be read.

Examples:
  # Five trials of 1 versus 3 workers
  wordcount bench a.txt b.txt c.txt

  # Ten trials of 1 versus 8 workers as JSON
  wordcount bench -n 10 -t 8 --json *.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runBenchCmd,
	}

	addRunFlags(cmd)
	cmd.Flags().IntP("trials", "n", config.DefaultTrials,
		"Number of timed trials per series")

	return cmd
}

// runBenchCmd executes the bench command.
func runBenchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)
	return runBench(cmd, cfg, logger)
}

// runBench runs the trial comparison and writes its report.
func runBench(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	q := queue.NewWithPaths(cfg.Files...)

	runner := pipeline.NewTrialRunner(pipeline.NewCoordinator(pipeline.WithLogger(logger)))
	baseline, parallel, err := runner.Compare(q, cfg.Threads, cfg.Trials)
	if err != nil {
		if errors.Is(err, pipeline.ErrRunFailed) {
			if werr := q.WriteErrors(cmd.ErrOrStderr()); werr != nil {
				return werr
			}
		}
		return err
	}

	bench := report.NewBenchmark(baseline, parallel, cfg.TopK)
	return writeReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteBenchmark(bench)
		return err
	})
}
