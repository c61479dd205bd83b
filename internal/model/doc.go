// Package model defines the data structures shared by the word counter.
//
// This package contains the following main types:
//   - FrequencyTable: word to occurrence count mapping
//   - WordCount: a single ranked entry of a FrequencyTable
//   - PathError: the error messages recorded for one input path
//   - RunResult: the outcome of one coordinated run
//   - TrialSummary: a series of timed runs with the same thread count
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The queue, pipeline and report packages all need these types,
// so centralizing them prevents import cycles.
//
// The models are serializable to JSON for report output.
package model
