// Package pipeline runs a pool of counting workers over a shared work queue.
//
// A run moves through three states:
//
//	Idle    queue populated, cursor at 0, no errors recorded
//	Running workers claim paths, count them and record failures
//	Joined  every worker has merged its counts; the result is readable
//
// The Coordinator spawns exactly the requested number of workers, waits for
// all of them and returns a RunResult. Nothing is published before the last
// worker has finished. Workers never return errors across the barrier: a
// worker that cannot read a file records the failure in the queue's error log
// and stops itself, while its siblings keep draining the queue.
//
// Design decision: Three independent locks guard the three pieces of shared
// state (the queue cursor, the error log and the result table). File reading
// and counting, which dominate the runtime, happen outside all of them.
//
// The TrialRunner repeats runs over the same queue for timing comparisons,
// rewinding the cursor and clearing the error log between runs.
package pipeline
