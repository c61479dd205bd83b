package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nao1215/wordcount/internal/accumulator"
	"github.com/nao1215/wordcount/internal/counter"
	"github.com/nao1215/wordcount/internal/model"
	"github.com/nao1215/wordcount/internal/queue"
	"golang.org/x/sync/errgroup"
)

// CountFunc counts the words of the file at path.
// counter.CountFile is the default.
type CountFunc func(path string) (model.FrequencyTable, error)

// Coordinator spawns workers for a run and joins them.
// A Coordinator holds no per-run state and can be reused for any number of
// runs, one at a time or concurrently on different queues.
type Coordinator struct {
	// count is the per-file counting step.
	count CountFunc

	// logger is used for run-level and worker-level logging.
	logger *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets a custom logger for the coordinator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithCountFunc replaces the per-file counting step.
func WithCountFunc(fn CountFunc) Option {
	return func(c *Coordinator) {
		if fn != nil {
			c.count = fn
		}
	}
}

// NewCoordinator creates a Coordinator with the given options.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		count: counter.CountFile,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Run spawns threads workers against q, waits for all of them and returns
// the merged table, the elapsed time and the errors recorded in q.
//
// q must be idle: populated, with its cursor rewound and its error log
// cleared. A queue left exhausted by a previous run yields an empty table.
// Per-path failures do not make Run fail; they are reported through
// RunResult.Errors and leave the table partial.
func (c *Coordinator) Run(q *queue.WorkQueue, threads int) (*model.RunResult, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	if threads < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreads, threads)
	}

	result := &model.RunResult{
		ID:      uuid.NewString(),
		Threads: threads,
	}
	logger := c.logger.With("run_id", result.ID)

	logger.Debug("starting run",
		"threads", threads,
		"files", q.Size(),
	)

	// A fresh accumulator per run keeps repeated trials independent.
	acc := accumulator.New()

	startTime := time.Now()

	// Design decision: We use a plain errgroup.Group rather than
	// errgroup.WithContext because a failing worker must not cancel its
	// siblings. The group only serves as the join barrier.
	var g errgroup.Group
	for id := range threads {
		w := &worker{
			id:     id,
			queue:  q,
			acc:    acc,
			count:  c.count,
			logger: logger,
		}
		g.Go(func() error {
			w.run()
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // Workers report failures through the queue

	result.Elapsed = time.Since(startTime)
	result.Table = acc.Snapshot()
	result.Errors = q.Errors()

	logger.Debug("run complete",
		"threads", threads,
		"elapsed", result.Elapsed,
		"words", len(result.Table),
		"failed_files", len(result.Errors),
	)

	return result, nil
}
