package model

import "time"

// PathError holds every error message recorded for one input path.
type PathError struct {
	// Index is the position of the path in the work queue.
	Index int `json:"index"`

	// Path is the file path as it was pushed to the queue.
	Path string `json:"path"`

	// Messages are the recorded messages in the order they were recorded.
	Messages []string `json:"messages"`
}

// RunResult is the outcome of one coordinated run: the merged table,
// the wall-clock time between spawning the first worker and joining the
// last one, and the errors collected along the way.
//
// A RunResult is created fresh for every run and is only handed to the
// caller after all workers have finished.
type RunResult struct {
	// ID identifies the run in log output.
	ID string `json:"id"`

	// Threads is the number of workers that were spawned.
	Threads int `json:"threads"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"-"`

	// Table is the merged frequency table.
	Table FrequencyTable `json:"table"`

	// Errors lists the paths that could not be counted, ordered by index.
	Errors []PathError `json:"errors,omitempty"`
}

// ElapsedMicroseconds returns Elapsed truncated to whole microseconds.
func (r *RunResult) ElapsedMicroseconds() int64 {
	return r.Elapsed.Microseconds()
}

// HasErrors reports whether any path failed during the run.
// When true, Table is partial: the failed paths, and any path a stopped
// worker would have claimed next, may be missing from it.
func (r *RunResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// TrialSummary collects repeated runs over the same path list with the
// same thread count.
type TrialSummary struct {
	// Threads is the worker count used by every run.
	Threads int `json:"threads"`

	// Runs are the completed runs in execution order.
	Runs []*RunResult `json:"-"`
}

// Min returns the shortest elapsed time among the runs, or zero when
// there are none.
func (s *TrialSummary) Min() time.Duration {
	if len(s.Runs) == 0 {
		return 0
	}
	minimum := s.Runs[0].Elapsed
	for _, r := range s.Runs[1:] {
		if r.Elapsed < minimum {
			minimum = r.Elapsed
		}
	}
	return minimum
}

// MinMicroseconds returns Min in whole microseconds.
func (s *TrialSummary) MinMicroseconds() int64 {
	return s.Min().Microseconds()
}

// Last returns the most recent run, or nil when there are none.
func (s *TrialSummary) Last() *RunResult {
	if len(s.Runs) == 0 {
		return nil
	}
	return s.Runs[len(s.Runs)-1]
}
