// Package queue provides the work queue shared by the counting workers.
//
// A WorkQueue is a sequential cursor over a list of file paths. Workers call
// Next to claim the next unclaimed path; each path is handed out exactly once
// per run. Workers that fail on a path record the failure against the path's
// index with RecordError instead of returning it, so one bad file never stops
// its siblings.
//
// Two independent locks guard the queue: one for the path list and cursor,
// one for the error log. Neither is held while a worker reads a file.
//
// Between runs the caller rewinds the cursor with ResetCursor and clears the
// error log with ResetErrors. Both must only be called while no worker is
// active.
package queue
