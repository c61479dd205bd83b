package report

import (
	"github.com/nao1215/wordcount/internal/model"
)

// Summary is the report view of one run.
type Summary struct {
	// RunID identifies the run in log output.
	RunID string `json:"run_id"`

	// Threads is the number of workers used.
	Threads int `json:"threads"`

	// ElapsedMicroseconds is the wall-clock time of the run.
	ElapsedMicroseconds int64 `json:"elapsed_us"`

	// TotalWords is the number of tokens counted.
	TotalWords int `json:"total_words"`

	// DistinctWords is the number of different words.
	DistinctWords int `json:"distinct_words"`

	// Top holds the most frequent words, highest count first.
	Top []model.WordCount `json:"top"`

	// Errors lists the files that could not be read.
	// When non-empty the counts are partial.
	Errors []model.PathError `json:"errors,omitempty"`
}

// NewSummary builds a Summary of r holding the k most frequent words.
// k <= 0 keeps every word.
func NewSummary(r *model.RunResult, k int) *Summary {
	return &Summary{
		RunID:               r.ID,
		Threads:             r.Threads,
		ElapsedMicroseconds: r.ElapsedMicroseconds(),
		TotalWords:          r.Table.Total(),
		DistinctWords:       len(r.Table),
		Top:                 r.Table.TopK(k),
		Errors:              r.Errors,
	}
}

// Partial reports whether some files were not counted.
func (s *Summary) Partial() bool {
	return len(s.Errors) > 0
}

// TrialTimes lists the elapsed times of a series of trials.
type TrialTimes struct {
	// Threads is the worker count of every trial in the series.
	Threads int `json:"threads"`

	// ElapsedMicroseconds holds one entry per trial in execution order.
	ElapsedMicroseconds []int64 `json:"elapsed_us"`

	// MinMicroseconds is the shortest trial.
	MinMicroseconds int64 `json:"min_us"`
}

// newTrialTimes converts a TrialSummary into its report view.
func newTrialTimes(s *model.TrialSummary) TrialTimes {
	times := make([]int64, len(s.Runs))
	for i, r := range s.Runs {
		times[i] = r.ElapsedMicroseconds()
	}
	return TrialTimes{
		Threads:             s.Threads,
		ElapsedMicroseconds: times,
		MinMicroseconds:     s.MinMicroseconds(),
	}
}

// Benchmark is the report view of a single-thread versus multi-thread
// comparison.
type Benchmark struct {
	// Trials is the number of completed trials per series.
	Trials int `json:"trials"`

	// Baseline is the single-thread series.
	Baseline TrialTimes `json:"baseline"`

	// Parallel is the multi-thread series.
	Parallel TrialTimes `json:"parallel"`

	// Speedup is Baseline.MinMicroseconds / Parallel.MinMicroseconds,
	// or zero when the parallel minimum is zero.
	Speedup float64 `json:"speedup"`

	// Result summarizes the last parallel run, including its top words.
	Result *Summary `json:"result,omitempty"`
}

// NewBenchmark builds a Benchmark from the two series of a comparison.
// The last parallel run provides the top-k word list.
func NewBenchmark(baseline, parallel *model.TrialSummary, k int) *Benchmark {
	b := &Benchmark{
		Trials:   len(parallel.Runs),
		Baseline: newTrialTimes(baseline),
		Parallel: newTrialTimes(parallel),
	}
	if b.Parallel.MinMicroseconds > 0 {
		b.Speedup = float64(b.Baseline.MinMicroseconds) / float64(b.Parallel.MinMicroseconds)
	}
	if last := parallel.Last(); last != nil {
		b.Result = NewSummary(last, k)
	}
	return b
}
