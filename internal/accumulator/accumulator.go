// Package accumulator provides the frequency table shared by all workers
// of a run.
package accumulator

import (
	"sync"

	"github.com/nao1215/wordcount/internal/model"
)

// Accumulator is a FrequencyTable guarded by its own lock.
// Workers count into private tables and merge them here once, after their
// loop ends, so the lock is taken once per worker rather than once per word.
type Accumulator struct {
	mu    sync.Mutex
	table model.FrequencyTable
}

// New creates an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{table: model.NewFrequencyTable()}
}

// Merge adds every count of local into the shared table.
func (a *Accumulator) Merge(local model.FrequencyTable) {
	if len(local) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.table.Merge(local)
}

// Snapshot returns a copy of the shared table.
func (a *Accumulator) Snapshot() model.FrequencyTable {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.table.Clone()
}

// Len returns the number of distinct words merged so far.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.table)
}
