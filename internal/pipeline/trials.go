package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/wordcount/internal/model"
	"github.com/nao1215/wordcount/internal/queue"
)

// TrialRunner repeats runs over the same path list to measure timing.
// Before every run it rewinds the queue cursor and clears the error log; the
// path list itself is reused unchanged. Each run gets a fresh result table,
// so tables of different trials never accumulate into each other.
type TrialRunner struct {
	coordinator *Coordinator
	logger      *slog.Logger
}

// NewTrialRunner creates a TrialRunner that executes runs with c.
// If c is nil, a Coordinator with default options is used.
func NewTrialRunner(c *Coordinator) *TrialRunner {
	if c == nil {
		c = NewCoordinator()
	}
	return &TrialRunner{
		coordinator: c,
		logger:      c.logger,
	}
}

// Run executes trials runs of threads workers each.
//
// It stops at the first run that records an error and returns the summary
// collected so far together with an error wrapping ErrRunFailed; the failed
// run is the summary's last entry.
func (r *TrialRunner) Run(q *queue.WorkQueue, threads, trials int) (*model.TrialSummary, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}

	summary := &model.TrialSummary{
		Threads: threads,
		Runs:    make([]*model.RunResult, 0, trials),
	}

	for i := range trials {
		if err := r.runOnce(q, summary, i+1); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// Compare alternates a single-threaded baseline run and a run with threads
// workers, trials times each, so both series run against the same file
// cache conditions.
//
// On the first failed run it returns both summaries collected so far and an
// error wrapping ErrRunFailed.
func (r *TrialRunner) Compare(q *queue.WorkQueue, threads, trials int) (baseline, parallel *model.TrialSummary, err error) {
	if trials < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}

	baseline = &model.TrialSummary{Threads: 1, Runs: make([]*model.RunResult, 0, trials)}
	parallel = &model.TrialSummary{Threads: threads, Runs: make([]*model.RunResult, 0, trials)}

	for i := range trials {
		if err := r.runOnce(q, baseline, i+1); err != nil {
			return baseline, parallel, err
		}
		if err := r.runOnce(q, parallel, i+1); err != nil {
			return baseline, parallel, err
		}
	}

	return baseline, parallel, nil
}

// runOnce resets q, executes one run and appends it to summary.
func (r *TrialRunner) runOnce(q *queue.WorkQueue, summary *model.TrialSummary, trial int) error {
	if q == nil {
		return ErrNilQueue
	}

	// No worker is active between runs, so the reset is safe here.
	q.ResetCursor()
	q.ResetErrors()

	result, err := r.coordinator.Run(q, summary.Threads)
	if err != nil {
		return err
	}
	summary.Runs = append(summary.Runs, result)

	r.logger.Debug("trial complete",
		"trial", trial,
		"threads", summary.Threads,
		"elapsed_us", result.ElapsedMicroseconds(),
	)

	if result.HasErrors() {
		return fmt.Errorf("%w: trial %d with %d thread(s), %d file(s) failed",
			ErrRunFailed, trial, summary.Threads, len(result.Errors))
	}
	return nil
}
