package queue

import (
	"bytes"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/wordcount/internal/model"
)

// TestWorkQueueNext tests sequential claiming of paths.
func TestWorkQueueNext(t *testing.T) {
	t.Parallel()

	t.Run("hands out paths in order", func(t *testing.T) {
		t.Parallel()

		q := NewWithPaths("a.txt", "b.txt", "c.txt")

		for i, want := range []string{"a.txt", "b.txt", "c.txt"} {
			path, idx, ok := q.Next()
			if !ok {
				t.Fatalf("expected path %d to be available", i)
			}
			if path != want || idx != i {
				t.Errorf("expected (%q, %d), got (%q, %d)", want, i, path, idx)
			}
		}

		if _, _, ok := q.Next(); ok {
			t.Error("expected queue to be exhausted")
		}
	})

	t.Run("empty queue is exhausted immediately", func(t *testing.T) {
		t.Parallel()

		q := New()
		if _, _, ok := q.Next(); ok {
			t.Error("expected empty queue to be exhausted")
		}
		if q.Size() != 0 {
			t.Errorf("expected size 0, got %d", q.Size())
		}
	})

	t.Run("concurrent callers claim each index exactly once", func(t *testing.T) {
		t.Parallel()

		const numPaths = 1000
		q := New()
		for range numPaths {
			q.Push("file")
		}

		var mu sync.Mutex
		claimed := make(map[int]int)

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					_, idx, ok := q.Next()
					if !ok {
						return
					}
					mu.Lock()
					claimed[idx]++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if len(claimed) != numPaths {
			t.Fatalf("expected %d claimed indexes, got %d", numPaths, len(claimed))
		}
		for idx, n := range claimed {
			if n != 1 {
				t.Errorf("index %d claimed %d times", idx, n)
			}
		}
	})
}

// TestWorkQueueResetCursor tests rewinding the cursor between runs.
func TestWorkQueueResetCursor(t *testing.T) {
	t.Parallel()

	q := NewWithPaths("a.txt", "b.txt")
	for {
		if _, _, ok := q.Next(); !ok {
			break
		}
	}

	q.ResetCursor()

	path, idx, ok := q.Next()
	if !ok || path != "a.txt" || idx != 0 {
		t.Errorf("expected (a.txt, 0, true) after reset, got (%q, %d, %v)", path, idx, ok)
	}
	if q.Size() != 2 {
		t.Errorf("expected path list to be unchanged, got size %d", q.Size())
	}
}

// TestWorkQueuePath tests index lookup.
func TestWorkQueuePath(t *testing.T) {
	t.Parallel()

	q := NewWithPaths("a.txt")

	if p, ok := q.Path(0); !ok || p != "a.txt" {
		t.Errorf("expected a.txt, got %q (ok=%v)", p, ok)
	}
	if _, ok := q.Path(1); ok {
		t.Error("expected out of range index to fail")
	}
	if _, ok := q.Path(-1); ok {
		t.Error("expected negative index to fail")
	}
}

// TestWorkQueueErrors tests the error log.
func TestWorkQueueErrors(t *testing.T) {
	t.Parallel()

	t.Run("no errors by default", func(t *testing.T) {
		t.Parallel()

		q := NewWithPaths("a.txt")
		if q.HasErrors() {
			t.Error("expected no errors")
		}
		if len(q.Errors()) != 0 {
			t.Errorf("expected empty error list, got %v", q.Errors())
		}
	})

	t.Run("errors are ordered by index and keep message order", func(t *testing.T) {
		t.Parallel()

		q := NewWithPaths("a.txt", "b.txt", "c.txt")
		q.RecordError(2, "first c")
		q.RecordError(0, "only a")
		q.RecordError(2, "second c")

		want := []model.PathError{
			{Index: 0, Path: "a.txt", Messages: []string{"only a"}},
			{Index: 2, Path: "c.txt", Messages: []string{"first c", "second c"}},
		}
		if diff := cmp.Diff(want, q.Errors()); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
		if !q.HasErrors() {
			t.Error("expected HasErrors to be true")
		}
	})

	t.Run("reset clears the log", func(t *testing.T) {
		t.Parallel()

		q := NewWithPaths("a.txt")
		q.RecordError(0, "boom")
		q.ResetErrors()

		if q.HasErrors() {
			t.Error("expected no errors after reset")
		}
	})

	t.Run("concurrent recording on the same index", func(t *testing.T) {
		t.Parallel()

		q := NewWithPaths("a.txt")

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				q.RecordError(0, "boom")
			}()
		}
		wg.Wait()

		errs := q.Errors()
		if len(errs) != 1 {
			t.Fatalf("expected 1 path with errors, got %d", len(errs))
		}
		if len(errs[0].Messages) != 50 {
			t.Errorf("expected 50 messages, got %d", len(errs[0].Messages))
		}
	})
}

// TestWorkQueueWriteErrors tests the error report format.
func TestWorkQueueWriteErrors(t *testing.T) {
	t.Parallel()

	q := NewWithPaths("good.txt", "bad.txt")
	q.RecordError(1, "Failed to open file bad.txt")

	var buf bytes.Buffer
	if err := q.WriteErrors(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "bad.txt:\nFailed to open file bad.txt\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
