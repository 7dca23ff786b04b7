package kilgarriff

import (
	"errors"
	"math"
	"testing"

	"github.com/stylo-cli/stylo/internal/freq"
)

func TestCompareValidation(t *testing.T) {
	nonEmpty := freq.Build([]string{"a", "b"})

	tests := []struct {
		name   string
		a, b   *freq.Table
		nWords int
	}{
		{name: "nil table", a: nil, b: nonEmpty, nWords: 10},
		{name: "empty first table", a: freq.New(), b: nonEmpty, nWords: 10},
		{name: "empty second table", a: nonEmpty, b: freq.New(), nWords: 10},
		{name: "zero n words", a: nonEmpty, b: nonEmpty, nWords: 0},
		{name: "negative n words", a: nonEmpty, b: nonEmpty, nWords: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(tt.a, tt.b, tt.nWords)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Compare() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCompareIdenticalDistributions(t *testing.T) {
	tokens := []string{"the", "the", "cat", "sat", "on", "the", "mat"}
	a := freq.Build(tokens)
	b := freq.Build(tokens)

	cmp, err := Compare(a, b, 100)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	// identical distributions have zero deviation from expectation
	if cmp.ChiSquared != 0 {
		t.Errorf("ChiSquared = %v, want 0 for identical inputs", cmp.ChiSquared)
	}
	if cmp.SizeA != 7 || cmp.SizeB != 7 {
		t.Errorf("sizes = %d, %d, want 7, 7", cmp.SizeA, cmp.SizeB)
	}
}

func TestCompareKnownValue(t *testing.T) {
	// a: 3x "a", 1x "b"; b: 1x "a", 3x "b"
	// joint: a=4, b=4, combined size 8, each side size 4
	// expected per word per side: 4*4/8 = 2
	// contribution per word: (3-2)^2/2 + (1-2)^2/2 = 1.0; total = 2.0
	a := freq.Build([]string{"a", "a", "a", "b"})
	b := freq.Build([]string{"a", "b", "b", "b"})

	cmp, err := Compare(a, b, 10)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if math.Abs(cmp.ChiSquared-2.0) > 1e-12 {
		t.Errorf("ChiSquared = %v, want 2.0", cmp.ChiSquared)
	}
	if cmp.DegreesOfFreedom != 1 {
		t.Errorf("DegreesOfFreedom = %d, want 1 (two words used)", cmp.DegreesOfFreedom)
	}
}

func TestCompareSymmetry(t *testing.T) {
	a := freq.Build([]string{"the", "quick", "brown", "fox", "the", "the", "lazy"})
	b := freq.Build([]string{"a", "slow", "green", "turtle", "a", "a", "a", "lazy"})

	ab, err := Compare(a, b, 50)
	if err != nil {
		t.Fatalf("Compare(a, b) error = %v", err)
	}
	ba, err := Compare(b, a, 50)
	if err != nil {
		t.Fatalf("Compare(b, a) error = %v", err)
	}

	if math.Abs(ab.ChiSquared-ba.ChiSquared) > 1e-12 {
		t.Errorf("asymmetric chi-squared: %v vs %v", ab.ChiSquared, ba.ChiSquared)
	}
	if ab.DegreesOfFreedom != ba.DegreesOfFreedom {
		t.Errorf("asymmetric degrees of freedom: %d vs %d", ab.DegreesOfFreedom, ba.DegreesOfFreedom)
	}
}

func TestCompareDegreesOfFreedomSmallVocabulary(t *testing.T) {
	// vocabulary smaller than requested nWords: dof tracks words actually used
	a := freq.Build([]string{"x", "y", "x"})
	b := freq.Build([]string{"y", "z"})

	cmp, err := Compare(a, b, 500)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	// joint vocabulary is {x, y, z}
	if cmp.DegreesOfFreedom != 2 {
		t.Errorf("DegreesOfFreedom = %d, want 2", cmp.DegreesOfFreedom)
	}
}

func TestCompareTopContributors(t *testing.T) {
	// "alpha" is heavily skewed, "beta" balanced; alpha must rank first
	a := freq.Build([]string{"alpha", "alpha", "alpha", "alpha", "beta"})
	b := freq.Build([]string{"beta", "gamma", "gamma", "gamma", "gamma"})

	cmp, err := Compare(a, b, 10)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if len(cmp.TopContributors) == 0 {
		t.Fatal("TopContributors is empty")
	}
	for i := 1; i < len(cmp.TopContributors); i++ {
		if cmp.TopContributors[i].Value > cmp.TopContributors[i-1].Value {
			t.Errorf("contributors not sorted descending at index %d", i)
		}
	}
	if first := cmp.TopContributors[0].Word; first != "alpha" && first != "gamma" {
		t.Errorf("top contributor = %q, want a fully skewed word", first)
	}
}

func TestCompareContributorCap(t *testing.T) {
	var tokensA, tokensB []string
	letters := "abcdefghijklmnopqrst"
	for i := 0; i < len(letters); i++ {
		w := string(letters[i])
		tokensA = append(tokensA, w, w)
		tokensB = append(tokensB, w)
	}
	cmp, err := Compare(freq.Build(tokensA), freq.Build(tokensB), 100)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(cmp.TopContributors) > 10 {
		t.Errorf("TopContributors length = %d, want at most 10", len(cmp.TopContributors))
	}
}

func TestCompareDeterminism(t *testing.T) {
	a := freq.Build([]string{"one", "two", "three", "two", "one", "one"})
	b := freq.Build([]string{"three", "four", "four", "one", "two"})

	first, err := Compare(a, b, 50)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	for i := 0; i < 25; i++ {
		again, err := Compare(a, b, 50)
		if err != nil {
			t.Fatalf("Compare() error = %v", err)
		}
		if again.ChiSquared != first.ChiSquared {
			t.Fatalf("run %d chi-squared %v differs from first %v", i, again.ChiSquared, first.ChiSquared)
		}
		for j := range again.TopContributors {
			if again.TopContributors[j] != first.TopContributors[j] {
				t.Fatalf("run %d contributor %d differs: %v vs %v",
					i, j, again.TopContributors[j], first.TopContributors[j])
			}
		}
	}
}
