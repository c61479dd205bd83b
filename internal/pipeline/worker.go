package pipeline

import (
	"log/slog"

	"github.com/nao1215/wordcount/internal/accumulator"
	"github.com/nao1215/wordcount/internal/model"
	"github.com/nao1215/wordcount/internal/queue"
)

// worker drains a queue into a private table and merges it once at the end.
type worker struct {
	id     int
	queue  *queue.WorkQueue
	acc    *accumulator.Accumulator
	count  CountFunc
	logger *slog.Logger
}

// run claims paths until the queue is exhausted or a file cannot be read.
// On failure exactly one error is recorded for the failing path and the
// worker stops claiming. Counts of the files it finished before the
// failure are still merged, since no other worker will claim those paths
// again in this run.
func (w *worker) run() {
	local := model.NewFrequencyTable()
	defer func() {
		w.acc.Merge(local)
	}()

	files := 0
	for {
		path, index, ok := w.queue.Next()
		if !ok {
			w.logger.Debug("worker finished", "worker", w.id, "files", files)
			return
		}

		counts, err := w.count(path)
		if err != nil {
			w.queue.RecordError(index, err.Error())
			w.logger.Warn("failed to count file, stopping worker",
				"worker", w.id,
				"path", path,
				"index", index,
				"error", err,
			)
			return
		}

		local.Merge(counts)
		files++
	}
}
