package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/wordcount/internal/counter"
	"github.com/nao1215/wordcount/internal/model"
	"github.com/nao1215/wordcount/internal/queue"
)

// discardLogger returns a logger that drops all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// corpus is the content of the test files written by writeCorpus.
var corpus = []string{
	"The quick brown fox jumps over the lazy dog",
	"the THE The\nthe end",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.\nlorem IPSUM",
	"",
	"dog\tdog\tDOG cat",
	"one two three four five six seven eight nine ten",
}

// writeCorpus writes every corpus entry into its own file and returns the paths.
func writeCorpus(t *testing.T) []string {
	t.Helper()

	dir := t.TempDir()
	paths := make([]string, 0, len(corpus))
	for i, content := range corpus {
		path := filepath.Join(dir, fmt.Sprintf("file%02d.txt", i))
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
		paths = append(paths, path)
	}
	return paths
}

// expectedTable counts the corpus sequentially without the pipeline.
func expectedTable(t *testing.T) model.FrequencyTable {
	t.Helper()

	want := model.NewFrequencyTable()
	for _, content := range corpus {
		counts, err := counter.Count(strings.NewReader(content))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want.Merge(counts)
	}
	return want
}

// TestNewCoordinator tests the Coordinator constructor.
func TestNewCoordinator(t *testing.T) {
	t.Parallel()

	t.Run("creates coordinator with defaults", func(t *testing.T) {
		t.Parallel()

		c := NewCoordinator()
		if c.logger == nil {
			t.Error("expected non-nil default logger")
		}
		if c.count == nil {
			t.Error("expected non-nil default count func")
		}
	})

	t.Run("ignores nil count func", func(t *testing.T) {
		t.Parallel()

		c := NewCoordinator(WithCountFunc(nil))
		if c.count == nil {
			t.Error("expected default count func to be kept")
		}
	})
}

// TestCoordinatorRun tests complete runs over real files.
func TestCoordinatorRun(t *testing.T) {
	t.Parallel()

	t.Run("table does not depend on thread count", func(t *testing.T) {
		t.Parallel()

		paths := writeCorpus(t)
		want := expectedTable(t)
		c := NewCoordinator(WithLogger(discardLogger()))

		for _, threads := range []int{1, 2, 3, len(paths), 2 * len(paths)} {
			q := queue.NewWithPaths(paths...)

			result, err := c.Run(q, threads)
			if err != nil {
				t.Fatalf("threads=%d: unexpected error: %v", threads, err)
			}
			if result.HasErrors() {
				t.Fatalf("threads=%d: unexpected errors: %v", threads, result.Errors)
			}
			if diff := cmp.Diff(want, result.Table); diff != "" {
				t.Errorf("threads=%d: table mismatch (-want +got):\n%s", threads, diff)
			}
			if result.Threads != threads {
				t.Errorf("expected Threads=%d, got %d", threads, result.Threads)
			}
		}
	})

	t.Run("sum of counts equals total token count", func(t *testing.T) {
		t.Parallel()

		paths := writeCorpus(t)
		result, err := NewCoordinator(WithLogger(discardLogger())).Run(queue.NewWithPaths(paths...), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tokens := 0
		for _, content := range corpus {
			tokens += len(strings.Fields(content))
		}
		if result.Table.Total() != tokens {
			t.Errorf("expected total %d, got %d", tokens, result.Table.Total())
		}
	})

	t.Run("case variants are folded", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "the.txt")
		if err := os.WriteFile(path, []byte("the THE The"), 0600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		result, err := NewCoordinator(WithLogger(discardLogger())).Run(queue.NewWithPaths(path), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(model.FrequencyTable{"the": 3}, result.Table); diff != "" {
			t.Errorf("table mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty queue yields empty result", func(t *testing.T) {
		t.Parallel()

		result, err := NewCoordinator(WithLogger(discardLogger())).Run(queue.New(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Table) != 0 {
			t.Errorf("expected empty table, got %v", result.Table)
		}
		if result.HasErrors() {
			t.Errorf("expected no errors, got %v", result.Errors)
		}
		if result.Elapsed > time.Second {
			t.Errorf("expected near-zero elapsed time, got %v", result.Elapsed)
		}
	})

	t.Run("unreadable path is reported and the rest is counted", func(t *testing.T) {
		t.Parallel()

		paths := writeCorpus(t)
		missing := filepath.Join(t.TempDir(), "missing.txt")
		all := append([]string{missing}, paths...)

		for _, threads := range []int{2, 4, len(all)} {
			q := queue.NewWithPaths(all...)
			result, err := NewCoordinator(WithLogger(discardLogger())).Run(q, threads)
			if err != nil {
				t.Fatalf("threads=%d: unexpected error: %v", threads, err)
			}

			if len(result.Errors) != 1 {
				t.Fatalf("threads=%d: expected 1 failed path, got %v", threads, result.Errors)
			}
			pe := result.Errors[0]
			if pe.Index != 0 || pe.Path != missing {
				t.Errorf("threads=%d: expected error for %q at index 0, got %+v", threads, missing, pe)
			}
			if len(pe.Messages) != 1 || !strings.Contains(pe.Messages[0], "failed to open file") {
				t.Errorf("threads=%d: unexpected messages: %v", threads, pe.Messages)
			}
			if diff := cmp.Diff(expectedTable(t), result.Table); diff != "" {
				t.Errorf("threads=%d: table mismatch (-want +got):\n%s", threads, diff)
			}
		}
	})

	t.Run("rejects non-positive thread count", func(t *testing.T) {
		t.Parallel()

		_, err := NewCoordinator(WithLogger(discardLogger())).Run(queue.New(), 0)
		if !errors.Is(err, ErrInvalidThreads) {
			t.Errorf("expected ErrInvalidThreads, got %v", err)
		}
	})

	t.Run("rejects nil queue", func(t *testing.T) {
		t.Parallel()

		_, err := NewCoordinator(WithLogger(discardLogger())).Run(nil, 1)
		if !errors.Is(err, ErrNilQueue) {
			t.Errorf("expected ErrNilQueue, got %v", err)
		}
	})

	t.Run("each run has its own id", func(t *testing.T) {
		t.Parallel()

		c := NewCoordinator(WithLogger(discardLogger()))
		first, err := c.Run(queue.New(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := c.Run(queue.New(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID == "" || first.ID == second.ID {
			t.Errorf("expected distinct non-empty ids, got %q and %q", first.ID, second.ID)
		}
	})
}

// TestCoordinatorReuse tests repeated runs over the same queue.
func TestCoordinatorReuse(t *testing.T) {
	t.Parallel()

	t.Run("reset between runs yields identical tables", func(t *testing.T) {
		t.Parallel()

		q := queue.NewWithPaths(writeCorpus(t)...)
		c := NewCoordinator(WithLogger(discardLogger()))

		first, err := c.Run(q, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		q.ResetCursor()
		q.ResetErrors()

		second, err := c.Run(q, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff(first.Table, second.Table); diff != "" {
			t.Errorf("tables differ between runs (-first +second):\n%s", diff)
		}
	})

	t.Run("exhausted queue without reset yields empty table", func(t *testing.T) {
		t.Parallel()

		q := queue.NewWithPaths(writeCorpus(t)...)
		c := NewCoordinator(WithLogger(discardLogger()))

		if _, err := c.Run(q, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := c.Run(q, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(second.Table) != 0 {
			t.Errorf("expected empty table, got %v", second.Table)
		}
	})
}

// TestWorkerFailurePolicy tests that a failing worker stops only itself.
func TestWorkerFailurePolicy(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	// fakeCount returns {path: 1} for every path except "bad".
	fakeCount := func(calls *atomic.Int32) CountFunc {
		return func(path string) (model.FrequencyTable, error) {
			calls.Add(1)
			if path == "bad" {
				return nil, errBoom
			}
			return model.FrequencyTable{path: 1}, nil
		}
	}

	t.Run("single worker stops at the failing path", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		c := NewCoordinator(WithLogger(discardLogger()), WithCountFunc(fakeCount(&calls)))
		q := queue.NewWithPaths("a", "bad", "c")

		result, err := c.Run(q, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if calls.Load() != 2 {
			t.Errorf("expected 2 count calls, got %d", calls.Load())
		}
		// Files counted before the failure are kept.
		if diff := cmp.Diff(model.FrequencyTable{"a": 1}, result.Table); diff != "" {
			t.Errorf("table mismatch (-want +got):\n%s", diff)
		}
		want := []model.PathError{{Index: 1, Path: "bad", Messages: []string{"boom"}}}
		if diff := cmp.Diff(want, result.Errors); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("siblings drain the queue", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		c := NewCoordinator(WithLogger(discardLogger()), WithCountFunc(fakeCount(&calls)))
		q := queue.NewWithPaths("a", "bad", "c", "d", "e")

		result, err := c.Run(q, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := model.FrequencyTable{"a": 1, "c": 1, "d": 1, "e": 1}
		if diff := cmp.Diff(want, result.Table); diff != "" {
			t.Errorf("table mismatch (-want +got):\n%s", diff)
		}
		if calls.Load() != 5 {
			t.Errorf("expected every path to be claimed once, got %d calls", calls.Load())
		}
	})

	t.Run("every worker failing still completes the run", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		c := NewCoordinator(WithLogger(discardLogger()), WithCountFunc(fakeCount(&calls)))
		q := queue.NewWithPaths("bad", "bad", "bad")

		result, err := c.Run(q, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Errors) != 3 {
			t.Errorf("expected 3 failed paths, got %d", len(result.Errors))
		}
		for _, pe := range result.Errors {
			if len(pe.Messages) != 1 {
				t.Errorf("expected exactly one message for index %d, got %v", pe.Index, pe.Messages)
			}
		}
		if len(result.Table) != 0 {
			t.Errorf("expected empty table, got %v", result.Table)
		}
	})
}

// TestCoordinatorConcurrency tests that workers actually run in parallel.
func TestCoordinatorConcurrency(t *testing.T) {
	t.Parallel()

	const threads = 4

	var current, maxSeen atomic.Int32
	var mu sync.Mutex
	slowCount := func(path string) (model.FrequencyTable, error) {
		n := current.Add(1)
		mu.Lock()
		if n > maxSeen.Load() {
			maxSeen.Store(n)
		}
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)
		current.Add(-1)
		return model.FrequencyTable{"w": 1}, nil
	}

	paths := make([]string, 3*threads)
	for i := range paths {
		paths[i] = fmt.Sprintf("p%d", i)
	}

	c := NewCoordinator(WithLogger(discardLogger()), WithCountFunc(slowCount))
	result, err := c.Run(queue.NewWithPaths(paths...), threads)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Table["w"] != len(paths) {
		t.Errorf("expected count %d, got %d", len(paths), result.Table["w"])
	}
	if maxSeen.Load() > threads {
		t.Errorf("expected at most %d concurrent workers, saw %d", threads, maxSeen.Load())
	}
	if maxSeen.Load() < 2 {
		t.Errorf("expected workers to overlap, saw %d", maxSeen.Load())
	}
}
