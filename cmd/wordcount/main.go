// Package main provides the entry point for the wordcount CLI.
//
// wordcount counts how often every word occurs across a set of text files.
// Files are shared between a fixed number of worker goroutines, and the
// per-worker counts are merged into one frequency table.
//
// Usage:
//
//	wordcount count <file>...
//	wordcount bench --trials 5 <file>...
//
// See --help for all available options.
package main

// main is the entry point for wordcount.
func main() {
	Execute()
}
