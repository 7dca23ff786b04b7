// Package freq provides word frequency tables for stylometric analysis.
//
// A frequency table maps normalized word tokens to occurrence counts and
// tracks the total token count. Tables are the common currency between the
// tokenizer and the statistical comparators: they can be built from a token
// sequence, joined by key union, and queried for their most frequent words.
//
// Usage Example:
//
//	table := freq.Build(tokens)
//	top := table.TopN(500)
//	// top holds the 500 most frequent words, deterministically ordered
//
// Top-N selection uses a total order (count descending, then word ascending)
// so that repeated runs over the same input produce identical results.
package freq

import (
	"sort"
)

// Table holds word occurrence counts for one token sequence.
type Table struct {
	Counts map[string]int // occurrence count per word
	Total  int            // total tokens counted (sum of Counts values)
}

// WordCount pairs a word with its occurrence count, used for ranked views.
type WordCount struct {
	Word  string
	Count int
}

// New returns an empty frequency table ready for incremental Add calls.
func New() *Table {
	return &Table{Counts: make(map[string]int)}
}

// Build constructs a frequency table from a token sequence.
//
// Parameters:
//   - tokens: normalized word tokens in document order
//
// Returns a table whose Total equals len(tokens). The token slice is not
// retained or mutated.
func Build(tokens []string) *Table {
	t := &Table{Counts: make(map[string]int, len(tokens)/2+1)}
	for _, tok := range tokens {
		t.Counts[tok]++
	}
	t.Total = len(tokens)
	return t
}

// Add records a single occurrence of word.
func (t *Table) Add(word string) {
	t.Counts[word]++
	t.Total++
}

// Count returns the occurrence count for word (0 if absent).
func (t *Table) Count(word string) int {
	return t.Counts[word]
}

// Vocabulary returns the number of distinct words in the table.
func (t *Table) Vocabulary() int {
	return len(t.Counts)
}

// Joint returns a new table holding the key-union sum of a and b.
// Both inputs are left unchanged.
func Joint(a, b *Table) *Table {
	j := &Table{Counts: make(map[string]int, len(a.Counts)+len(b.Counts))}
	for w, c := range a.Counts {
		j.Counts[w] += c
	}
	for w, c := range b.Counts {
		j.Counts[w] += c
	}
	j.Total = a.Total + b.Total
	return j
}

// TopN returns the n most frequent words in the table, ordered by count
// descending with ties broken by lexicographic word order. If the vocabulary
// is smaller than n, all words are returned.
//
// The deterministic tie-break matters: comparator results feed bit-identical
// reproducibility guarantees, so an unstable sort here is not acceptable.
func (t *Table) TopN(n int) []WordCount {
	if n <= 0 || len(t.Counts) == 0 {
		return nil
	}

	ranked := make([]WordCount, 0, len(t.Counts))
	for w, c := range t.Counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
