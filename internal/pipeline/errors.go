package pipeline

import "errors"

var (
	// ErrInvalidThreads is returned when a run is requested with fewer than
	// one worker.
	ErrInvalidThreads = errors.New("invalid thread count: must be positive")

	// ErrInvalidTrials is returned when fewer than one trial is requested.
	ErrInvalidTrials = errors.New("invalid trial count: must be positive")

	// ErrNilQueue is returned when a run is requested without a work queue.
	ErrNilQueue = errors.New("work queue is nil")

	// ErrRunFailed is returned by the TrialRunner when a run finished with
	// per-path errors. The run's table is partial.
	ErrRunFailed = errors.New("run finished with errors")
)
