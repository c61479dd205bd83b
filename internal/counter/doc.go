// Package counter counts the words of a single file.
//
// Counting is a pure operation: it reads one file and returns a fresh
// FrequencyTable without touching any shared state. Tokens are separated by
// ASCII whitespace and folded to lowercase byte by byte; no locale or Unicode
// case folding is applied.
package counter
