// Package ngram computes Shannon entropy over word and character n-grams.
//
// Entropy measures how unpredictable the next n-gram in a sequence is;
// higher values mean more diverse text. Perplexity is 2^entropy, and the
// normalized entropy rescales into [0, 1] against the maximum achievable
// for the observed n-gram vocabulary.
package ngram

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stylo-cli/stylo/internal/freq"
)

// ErrInvalidInput reports a non-positive n-gram size.
var ErrInvalidInput = errors.New("invalid input")

// Kind distinguishes word n-grams from character n-grams.
type Kind string

const (
	Word      Kind = "word"
	Character Kind = "character"
)

// gramSep joins n-gram components into a single table key. Unit separator
// cannot appear in tokenized words or sane text.
const gramSep = "\x1f"

// Result is the entropy profile of one n-gram view of a text.
type Result struct {
	Entropy      float64 `json:"entropy"`
	Perplexity   float64 `json:"perplexity"`
	Normalized   float64 `json:"normalized_entropy"`
	N            int     `json:"n"`
	Kind         Kind    `json:"kind"`
	ItemCount    int     `json:"item_count"`
	UniqueNgrams int     `json:"unique_ngrams"`
	TotalNgrams  int     `json:"total_ngrams"`
}

// WordEntropy computes Shannon entropy over word n-grams of the token
// stream. Texts with fewer than n tokens score zero entropy and unit
// perplexity.
func WordEntropy(tokens []string, n int) (*Result, error) {
	return entropy(tokens, n, Word)
}

// CharEntropy computes Shannon entropy over character n-grams of the raw
// text. Every rune counts, whitespace included, since spacing habits are
// themselves a stylistic signal.
func CharEntropy(text string, n int) (*Result, error) {
	runes := []rune(text)
	items := make([]string, len(runes))
	for i, r := range runes {
		items[i] = string(r)
	}
	return entropy(items, n, Character)
}

// Frequencies builds the n-gram frequency table for a sequence of items.
// Keys are the n-gram components joined with a unit separator.
func Frequencies(items []string, n int) *freq.Table {
	table := freq.New()
	for i := 0; i+n <= len(items); i++ {
		table.Add(strings.Join(items[i:i+n], gramSep))
	}
	return table
}

func entropy(items []string, n int, kind Kind) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n-gram size %d must be positive", ErrInvalidInput, n)
	}

	res := &Result{N: n, Kind: kind, ItemCount: len(items), Perplexity: 1}
	if len(items) < n {
		return res, nil
	}

	table := Frequencies(items, n)
	total := float64(table.Total)

	h := 0.0
	for _, count := range table.Counts {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}

	res.Entropy = h
	res.Perplexity = math.Pow(2, h)
	res.UniqueNgrams = len(table.Counts)
	res.TotalNgrams = table.Total
	if res.UniqueNgrams > 1 {
		res.Normalized = h / math.Log2(float64(res.UniqueNgrams))
	}
	return res, nil
}
