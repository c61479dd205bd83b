package report

import (
	"fmt"
	"io"
	"strings"
)

// SimpleWriter outputs human-readable text reports.
// The top words are printed one per line as a right-aligned count followed
// by the word, then the timing line.
type SimpleWriter struct {
	baseWriter

	// verbose adds word totals and the run ID to the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var sb strings.Builder
	w.writeSummary(&sb, summary)
	return io.WriteString(w.output, sb.String())
}

// WriteBenchmark outputs the per-trial timings, both minimums and the
// top words of the last parallel run.
func (w *SimpleWriter) WriteBenchmark(bench *Benchmark) (int, error) {
	var sb strings.Builder

	if bench.Result != nil {
		w.writeTop(&sb, bench.Result)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%-7s %16s %16s\n", "Trial",
		threadsLabel(bench.Baseline.Threads), threadsLabel(bench.Parallel.Threads))
	for i := range bench.Trials {
		fmt.Fprintf(&sb, "%-7d %16s %16s\n", i+1,
			w.trialTime(bench.Baseline, i), w.trialTime(bench.Parallel, i))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Number of trials: %d\n", bench.Trials)
	fmt.Fprintf(&sb, "Minimum time with %s: %s us\n",
		threadsLabel(bench.Baseline.Threads), w.number(bench.Baseline.MinMicroseconds))
	fmt.Fprintf(&sb, "Minimum time with %s: %s us\n",
		threadsLabel(bench.Parallel.Threads), w.number(bench.Parallel.MinMicroseconds))
	if bench.Speedup > 0 {
		fmt.Fprintf(&sb, "Speedup: %.2fx\n", bench.Speedup)
	}

	return io.WriteString(w.output, sb.String())
}

// writeSummary writes the top words, the timing line and any warnings.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, summary *Summary) {
	w.writeTop(sb, summary)
	sb.WriteString("\n")

	fmt.Fprintf(sb, "Elapsed time with %s: %s us\n",
		threadsLabel(summary.Threads), w.number(summary.ElapsedMicroseconds))

	if w.verbose {
		fmt.Fprintf(sb, "Words: %s total, %s distinct\n",
			w.number(int64(summary.TotalWords)), w.number(int64(summary.DistinctWords)))
		fmt.Fprintf(sb, "Run ID: %s\n", summary.RunID)
	}

	if summary.Partial() {
		fmt.Fprintf(sb, "\nWARNING: %d file(s) could not be read; counts are partial\n", len(summary.Errors))
		for _, pe := range summary.Errors {
			fmt.Fprintf(sb, "  %s\n", pe.Path)
		}
	}
}

// writeTop writes one "%4d word" line per entry.
func (w *SimpleWriter) writeTop(sb *strings.Builder, summary *Summary) {
	if len(summary.Top) == 0 {
		sb.WriteString("No words counted.\n")
		return
	}
	for _, wc := range summary.Top {
		fmt.Fprintf(sb, "%4d %s\n", wc.Count, wc.Word)
	}
}

// trialTime formats the i-th time of a series, or "-" when missing.
func (w *SimpleWriter) trialTime(t TrialTimes, i int) string {
	if i >= len(t.ElapsedMicroseconds) {
		return "-"
	}
	return w.number(t.ElapsedMicroseconds[i]) + " us"
}

// threadsLabel returns "1 thread" or "N threads".
func threadsLabel(n int) string {
	if n == 1 {
		return "1 thread"
	}
	return fmt.Sprintf("%d threads", n)
}
