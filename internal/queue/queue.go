package queue

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/nao1215/wordcount/internal/model"
)

// WorkQueue hands out file paths to concurrent workers and collects
// per-path errors.
type WorkQueue struct {
	// paths is the ordered path list. It is expected to be fully populated
	// before any worker starts.
	paths []string

	// cursor is the index of the next unclaimed path. It never decreases
	// within a run.
	cursor int

	// mu guards paths and cursor.
	mu sync.Mutex

	// errs maps a path index to the messages recorded for it.
	errs map[int][]string

	// errMu guards errs.
	errMu sync.Mutex
}

// New creates an empty WorkQueue.
func New() *WorkQueue {
	return &WorkQueue{
		paths: make([]string, 0),
		errs:  make(map[int][]string),
	}
}

// NewWithPaths creates a WorkQueue loaded with the given paths in order.
func NewWithPaths(paths ...string) *WorkQueue {
	q := New()
	for _, p := range paths {
		q.Push(p)
	}
	return q
}

// Push appends a path to the queue.
func (q *WorkQueue) Push(path string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paths = append(q.paths, path)
}

// Next claims the next unclaimed path and returns it with its index.
// The read, bounds check and increment of the cursor happen under one lock,
// so concurrent callers never receive the same index.
// ok is false once every path has been claimed.
func (q *WorkQueue) Next() (path string, index int, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cursor >= len(q.paths) {
		return "", 0, false
	}
	path, index = q.paths[q.cursor], q.cursor
	q.cursor++
	return path, index, true
}

// Size returns the number of paths in the queue.
func (q *WorkQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.paths)
}

// Path returns the path stored at index.
func (q *WorkQueue) Path(index int) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 0 || index >= len(q.paths) {
		return "", false
	}
	return q.paths[index], true
}

// ResetCursor rewinds the cursor to the first path.
// The caller must ensure no worker is active.
func (q *WorkQueue) ResetCursor() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.cursor = 0
}

// ResetErrors clears the error log.
// The caller must ensure no worker is active.
func (q *WorkQueue) ResetErrors() {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	q.errs = make(map[int][]string)
}

// RecordError appends message to the error list of the path at index.
// It is safe to call from multiple workers at once.
func (q *WorkQueue) RecordError(index int, message string) {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	q.errs[index] = append(q.errs[index], message)
}

// HasErrors reports whether any error has been recorded since the last
// ResetErrors.
func (q *WorkQueue) HasErrors() bool {
	q.errMu.Lock()
	defer q.errMu.Unlock()
	return len(q.errs) != 0
}

// Errors returns a snapshot of the error log ordered by path index.
func (q *WorkQueue) Errors() []model.PathError {
	q.errMu.Lock()
	indexes := make([]int, 0, len(q.errs))
	messages := make(map[int][]string, len(q.errs))
	for idx, msgs := range q.errs {
		indexes = append(indexes, idx)
		messages[idx] = append([]string(nil), msgs...)
	}
	q.errMu.Unlock()

	sort.Ints(indexes)

	// The path lookup takes the cursor lock, so it runs after the error
	// lock has been released. The two locks are never held together.
	result := make([]model.PathError, 0, len(indexes))
	for _, idx := range indexes {
		path, _ := q.Path(idx)
		result = append(result, model.PathError{
			Index:    idx,
			Path:     path,
			Messages: messages[idx],
		})
	}
	return result
}

// WriteErrors writes the error log to w. For every path with errors it
// writes the path followed by a colon, then each message on its own line.
func (q *WorkQueue) WriteErrors(w io.Writer) error {
	for _, pe := range q.Errors() {
		if _, err := fmt.Fprintf(w, "%s:\n", pe.Path); err != nil {
			return err
		}
		for _, msg := range pe.Messages {
			if _, err := fmt.Fprintln(w, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
