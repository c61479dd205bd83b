package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Writer defines the interface for report output.
// Implementations write run results in various formats.
type Writer interface {
	// Write outputs the summary of a single run.
	// Returns the number of bytes written and any error encountered.
	Write(summary *Summary) (int, error)

	// WriteBenchmark outputs a single-thread versus multi-thread comparison.
	WriteBenchmark(bench *Benchmark) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the summary to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(summary *Summary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteBenchmark outputs the benchmark to all configured Writers.
func (m *MultiWriter) WriteBenchmark(bench *Benchmark) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteBenchmark(bench)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer

	// printer formats numbers with digit grouping, e.g. 1,234,567.
	printer *message.Printer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{
		output:  output,
		printer: message.NewPrinter(language.English),
	}
}

// number formats n with digit grouping.
func (b baseWriter) number(n int64) string {
	return b.printer.Sprintf("%d", n)
}
