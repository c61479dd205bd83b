package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/wordcount/internal/config"
	"github.com/nao1215/wordcount/internal/log"
	"github.com/nao1215/wordcount/internal/report"
	"github.com/spf13/cobra"
)

// errPartialCount is returned when some files could not be read.
// The report is still written, so the exit status is the only signal.
var errPartialCount = errors.New("some files could not be read")

// addRunFlags registers the flags shared by count and bench.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("threads", "t", config.DefaultThreads,
		"Number of worker goroutines")
	cmd.Flags().IntP("top", "k", config.DefaultTopK,
		"Number of most frequent words to report (0 reports every word)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wordcount in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// getBoolFlag retrieves a bool flag from the command or the root's
// persistent flags. Missing flags read as false.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags, in increasing order of precedence. Only flags given on
// the command line override file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, keep the defaults when no file is found.
	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("threads") {
		if cfg.Threads, err = flags.GetInt("threads"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("top") {
		if cfg.TopK, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("trials") != nil && flags.Changed("trials") {
		if cfg.Trials, err = flags.GetInt("trials"); err != nil {
			return nil, err
		}
	}

	// Either report flag replaces the file's format entirely.
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.Files = args

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// setupLogger creates a structured logger that writes to the command's
// error stream.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	if getBoolFlag(cmd, "log-json") {
		return log.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), verbose)
}

// newReportWriter creates the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch cfg.Format() {
	case config.FormatJSON:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// writeReport opens the configured destination and passes a Writer for it
// to write. The destination is cfg.ReportFile, or the command's output
// stream when no file is set.
func writeReport(cmd *cobra.Command, cfg *config.Config, write func(report.Writer) error) error {
	if cfg.ReportFile == "" {
		return write(newReportWriter(cfg, cmd.OutOrStdout()))
	}

	if err := ensureParentDir(cfg.ReportFile); err != nil {
		return err
	}

	// Create/overwrite the output file with owner-only permissions
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(newReportWriter(cfg, f)); err != nil {
		_ = f.Close() //nolint:errcheck // The write error is more useful
		return err
	}
	return f.Close()
}
