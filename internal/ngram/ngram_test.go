package ngram

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWordEntropyUniform(t *testing.T) {
	res, err := WordEntropy([]string{"a", "a", "b", "b"}, 1)
	if err != nil {
		t.Fatalf("WordEntropy() error: %v", err)
	}

	// Two equiprobable unigrams carry exactly one bit.
	if !near(res.Entropy, 1) {
		t.Errorf("Entropy = %f, want 1", res.Entropy)
	}
	if !near(res.Perplexity, 2) {
		t.Errorf("Perplexity = %f, want 2", res.Perplexity)
	}
	if !near(res.Normalized, 1) {
		t.Errorf("Normalized = %f, want 1", res.Normalized)
	}
	if res.UniqueNgrams != 2 || res.TotalNgrams != 4 {
		t.Errorf("ngram counts = %d unique, %d total", res.UniqueNgrams, res.TotalNgrams)
	}
}

func TestWordEntropyBigrams(t *testing.T) {
	res, err := WordEntropy([]string{"a", "b", "a", "b"}, 2)
	if err != nil {
		t.Fatalf("WordEntropy() error: %v", err)
	}

	// Bigrams a-b, b-a, a-b: probabilities 2/3 and 1/3.
	want := -(2.0/3.0*math.Log2(2.0/3.0) + 1.0/3.0*math.Log2(1.0/3.0))
	if !near(res.Entropy, want) {
		t.Errorf("Entropy = %f, want %f", res.Entropy, want)
	}
	if res.TotalNgrams != 3 {
		t.Errorf("TotalNgrams = %d, want 3", res.TotalNgrams)
	}
}

func TestWordEntropyShortText(t *testing.T) {
	res, err := WordEntropy([]string{"a", "b"}, 3)
	if err != nil {
		t.Fatalf("WordEntropy() error: %v", err)
	}
	if res.Entropy != 0 || res.Perplexity != 1 {
		t.Errorf("short text: entropy = %f, perplexity = %f", res.Entropy, res.Perplexity)
	}
	if res.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", res.ItemCount)
	}
}

func TestEntropyInvalidN(t *testing.T) {
	if _, err := WordEntropy([]string{"a"}, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("n=0: err = %v, want ErrInvalidInput", err)
	}
}

func TestCharEntropy(t *testing.T) {
	res, err := CharEntropy("aaaa", 1)
	if err != nil {
		t.Fatalf("CharEntropy() error: %v", err)
	}
	if res.Entropy != 0 {
		t.Errorf("Entropy = %f, want 0 for a single repeated rune", res.Entropy)
	}
	if res.Normalized != 0 {
		t.Errorf("Normalized = %f, want 0", res.Normalized)
	}

	res, err = CharEntropy("abab", 2)
	if err != nil {
		t.Fatalf("CharEntropy() error: %v", err)
	}
	if res.Kind != Character || res.TotalNgrams != 3 {
		t.Errorf("kind = %q, total = %d", res.Kind, res.TotalNgrams)
	}
}

func TestFrequencies(t *testing.T) {
	table := Frequencies([]string{"a", "b", "a", "b"}, 2)
	if table.Total != 3 {
		t.Fatalf("Total = %d, want 3", table.Total)
	}
	if got := table.Count("a" + gramSep + "b"); got != 2 {
		t.Errorf("count(a·b) = %d, want 2", got)
	}
	if got := table.Count("b" + gramSep + "a"); got != 1 {
		t.Errorf("count(b·a) = %d, want 1", got)
	}
}
