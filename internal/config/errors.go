package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate and File.Validate so callers
// can use errors.Is for programmatic handling.
var (
	// ErrNoFiles is returned when no input file is specified.
	ErrNoFiles = errors.New("no files specified: provide one or more file paths")

	// ErrInvalidThreads is returned when the thread count is not positive.
	ErrInvalidThreads = errors.New("invalid thread count: must be positive")

	// ErrInvalidTrials is returned when the trial count is not positive.
	ErrInvalidTrials = errors.New("invalid trial count: must be positive")

	// ErrInvalidTopK is returned when the top-K value is negative.
	// Use 0 to report every word.
	ErrInvalidTopK = errors.New("invalid top count: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidFormat is returned when the configuration file names an
	// unknown report format.
	ErrInvalidFormat = errors.New("invalid report format: must be text, json or markdown")
)
