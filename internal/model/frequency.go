package model

import "sort"

// FrequencyTable maps a lowercase word to its number of occurrences.
// Counts are never negative.
type FrequencyTable map[string]int

// WordCount is one entry of a FrequencyTable.
type WordCount struct {
	// Word is the lowercase token.
	Word string `json:"word"`

	// Count is the number of times Word occurred across all counted files.
	Count int `json:"count"`
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() FrequencyTable {
	return make(FrequencyTable)
}

// Add adds n occurrences of word.
func (t FrequencyTable) Add(word string, n int) {
	t[word] += n
}

// Merge adds every count of other into t.
// Merging is commutative and associative, so the final content does not
// depend on the order in which tables are merged.
func (t FrequencyTable) Merge(other FrequencyTable) {
	for word, n := range other {
		t[word] += n
	}
}

// Total returns the sum of all counts, which equals the number of tokens
// that contributed to the table.
func (t FrequencyTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Clone returns an independent copy of t.
func (t FrequencyTable) Clone() FrequencyTable {
	c := make(FrequencyTable, len(t))
	for word, n := range t {
		c[word] = n
	}
	return c
}

// Equal reports whether t and other hold the same words with the same counts.
func (t FrequencyTable) Equal(other FrequencyTable) bool {
	if len(t) != len(other) {
		return false
	}
	for word, n := range t {
		m, ok := other[word]
		if !ok || m != n {
			return false
		}
	}
	return true
}

// TopK returns the k most frequent words, highest count first.
// Words with equal counts are ordered alphabetically so the result is
// deterministic. If k is not positive or exceeds the table size, all
// entries are returned.
func (t FrequencyTable) TopK(k int) []WordCount {
	entries := make([]WordCount, 0, len(t))
	for word, n := range t {
		entries = append(entries, WordCount{Word: word, Count: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if k > 0 && k < len(entries) {
		entries = entries[:k]
	}
	return entries
}
