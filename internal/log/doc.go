// Package log provides logger constructors built on the standard slog
// package, so every command configures log level and format the same way.
//
// Log output always goes to the writer passed in (typically os.Stderr) and
// never to stdout, which is reserved for reports.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
