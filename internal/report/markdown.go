package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// maxChartSlices caps the number of words drawn in the pie chart.
const maxChartSlices = 10

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, GitHub alerts and mermaid
// charts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Word Count Report")
	md.PlainText("")

	w.writeRunTable(md, summary)
	w.writeStatus(md, summary)
	w.writeTopWords(md, summary)
	w.writeErrors(md, summary)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteBenchmark outputs the benchmark in Markdown format.
func (w *MarkdownWriter) WriteBenchmark(bench *Benchmark) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Word Count Benchmark")
	md.PlainText("")

	rows := make([][]string, 0, bench.Trials)
	for i := range bench.Trials {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			w.trialCell(bench.Baseline, i),
			w.trialCell(bench.Parallel, i),
		})
	}
	md.H2("Trials")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Trial", threadsLabel(bench.Baseline.Threads), threadsLabel(bench.Parallel.Threads)},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Minimum")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Workers", "Minimum (us)"},
		Rows: [][]string{
			{threadsLabel(bench.Baseline.Threads), w.number(bench.Baseline.MinMicroseconds)},
			{threadsLabel(bench.Parallel.Threads), w.number(bench.Parallel.MinMicroseconds)},
		},
	})
	md.PlainText("")

	if bench.Speedup > 0 {
		md.Note(fmt.Sprintf("Speedup with %s: %.2fx", threadsLabel(bench.Parallel.Threads), bench.Speedup))
		md.PlainText("")
	}

	if bench.Result != nil {
		w.writeTopWords(md, bench.Result)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeRunTable writes the basic run information.
func (w *MarkdownWriter) writeRunTable(md *markdown.Markdown, summary *Summary) {
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + summary.RunID + "`"},
			{"Workers", strconv.Itoa(summary.Threads)},
			{"Elapsed (us)", w.number(summary.ElapsedMicroseconds)},
			{"Total Words", w.number(int64(summary.TotalWords))},
			{"Distinct Words", w.number(int64(summary.DistinctWords))},
		},
	})
	md.PlainText("")
}

// writeStatus writes an alert that tells whether the counts are complete.
func (w *MarkdownWriter) writeStatus(md *markdown.Markdown, summary *Summary) {
	if summary.Partial() {
		md.Warningf("%d file(s) could not be read. Counts are partial.", len(summary.Errors))
	} else {
		md.Tip("All files were counted.")
	}
	md.PlainText("")
}

// writeTopWords writes the ranking table and a pie chart of the leaders.
func (w *MarkdownWriter) writeTopWords(md *markdown.Markdown, summary *Summary) {
	md.H2("Top Words")
	md.PlainText("")

	if len(summary.Top) == 0 {
		md.PlainText("No words counted.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(summary.Top))
	for i, wc := range summary.Top {
		rows[i] = []string{strconv.Itoa(i + 1), "`" + wc.Word + "`", w.number(int64(wc.Count))}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Word", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, summary)
}

// writePieChart writes a mermaid pie chart of the most frequent words.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary *Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Word Frequency"),
		piechart.WithShowData(true),
	)

	for i, wc := range summary.Top {
		if i == maxChartSlices {
			break
		}
		chart.LabelAndIntValue(wc.Word, uint64(wc.Count)) //nolint:gosec // Counts are never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeErrors lists every unreadable file with its messages.
func (w *MarkdownWriter) writeErrors(md *markdown.Markdown, summary *Summary) {
	if !summary.Partial() {
		return
	}

	md.H2("Errors")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Errors))
	for _, pe := range summary.Errors {
		for _, msg := range pe.Messages {
			rows = append(rows, []string{"`" + pe.Path + "`", msg})
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Message"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by wordcount*")
}

// trialCell formats the i-th time of a series, or "-" when missing.
func (w *MarkdownWriter) trialCell(t TrialTimes, i int) string {
	if i >= len(t.ElapsedMicroseconds) {
		return "-"
	}
	return w.number(t.ElapsedMicroseconds[i])
}
