// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables and charts
//
// Design decision: We separate report writing from the run results (which
// are in the model package) so the counting core never depends on
// presentation. Writers consume a Summary or a Benchmark, the report views
// built from a RunResult or from two TrialSummary values.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
