package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The thread, trial and top-K defaults match the constants the tool has
// always used for its timing comparison.
const (
	// DefaultThreads is the number of workers used for the parallel run.
	DefaultThreads = 3

	// DefaultTrials is the number of timed repetitions in a benchmark.
	// The minimum over the trials is reported, which filters out runs
	// disturbed by unrelated system activity.
	DefaultTrials = 5

	// DefaultTopK is the number of most frequent words printed in a report.
	DefaultTopK = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "wordcount"
)

// Format selects the report format.
type Format string

const (
	// FormatText is the human-readable terminal report (default).
	FormatText Format = "text"

	// FormatJSON is the structured JSON report.
	FormatJSON Format = "json"

	// FormatMarkdown is the GitHub Flavored Markdown report.
	FormatMarkdown Format = "markdown"
)

// Config holds all configuration options for a count or benchmark.
// It is populated from the configuration file and CLI flags and passed
// through the application rather than kept in global state.
type Config struct {
	// Threads is the number of workers spawned for a run.
	Threads int

	// Trials is the number of timed repetitions for a benchmark.
	Trials int

	// TopK is the number of most frequent words to report.
	// Zero reports every word.
	TopK int

	// Verbose enables debug log output.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home directory
	// and the XDG config directory.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// Files is the list of paths to count.
	Files []string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Threads: DefaultThreads,
		Trials:  DefaultTrials,
		TopK:    DefaultTopK,
	}
}

// Format returns the report format selected by the report flags.
func (c *Config) Format() Format {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// SetFormat sets the report flags from a format value.
func (c *Config) SetFormat(f Format) {
	c.JSONReport = f == FormatJSON
	c.MarkdownReport = f == FormatMarkdown
}

// XDGConfigDir returns the XDG config directory for the word counter.
// On Linux: ~/.config/wordcount
// On macOS: ~/Library/Application Support/wordcount
// On Windows: %APPDATA%\wordcount
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package's sentinel errors.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoFiles
	}

	if c.Threads <= 0 {
		return ErrInvalidThreads
	}

	if c.Trials <= 0 {
		return ErrInvalidTrials
	}

	if c.TopK < 0 {
		return ErrInvalidTopK
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
