package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/wordcount/internal/config"
	"github.com/nao1215/wordcount/internal/pipeline"
	"github.com/nao1215/wordcount/internal/queue"
	"github.com/nao1215/wordcount/internal/report"
	"github.com/spf13/cobra"
)

// NewCountCmd creates the count command.
func NewCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [FILES...]",
		Short: "Count word frequencies across files",
		Long: `Count reads every file once and prints the most frequent words with
the time the run took.

Each worker claims the next unclaimed file, counts it, and merges its
counts into the shared table when it runs out of files. A file that
cannot be opened stops only the worker that claimed it; its path is
listed on stderr and the exit status is 1.

Examples:
  # Count with the default number of workers
  wordcount count a.txt b.txt c.txt

  # Use 8 workers and print the 20 most frequent words
  wordcount count -t 8 -k 20 *.txt

  # Write a Markdown report to a file
  wordcount count --markdown -o report.md *.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runCountCmd,
	}

	addRunFlags(cmd)

	return cmd
}

// runCountCmd executes the count command.
func runCountCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)
	return runCount(cmd, cfg, logger)
}

// runCount performs a single run over cfg.Files and writes its report.
func runCount(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	q := queue.NewWithPaths(cfg.Files...)

	coordinator := pipeline.NewCoordinator(pipeline.WithLogger(logger))
	result, err := coordinator.Run(q, cfg.Threads)
	if err != nil {
		return err
	}

	summary := report.NewSummary(result, cfg.TopK)
	if err := writeReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.Write(summary)
		return err
	}); err != nil {
		return err
	}

	if result.HasErrors() {
		if err := q.WriteErrors(cmd.ErrOrStderr()); err != nil {
			return err
		}
		return fmt.Errorf("%w: %d of %d", errPartialCount, len(result.Errors), q.Size())
	}
	return nil
}
