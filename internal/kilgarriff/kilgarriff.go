// Package kilgarriff implements Kilgarriff's chi-squared corpus comparison.
//
// The statistic compares two word frequency tables over the most frequent
// words of their joint vocabulary. For each selected word, observed counts
// are compared against expected counts derived from the pooled distribution,
// and the per-word deviations are summed into a single chi-squared value.
//
// The value is used as a relative distance between two text segments, not as
// a calibrated hypothesis test: higher means more stylistically different.
//
// Usage Example:
//
//	cmp, err := kilgarriff.Compare(freq.Build(tokensA), freq.Build(tokensB), 500)
//	// cmp.ChiSquared is the distance; cmp.TopContributors explains it
//
// Reference: Kilgarriff, A. (2001). Comparing corpora. International Journal
// of Corpus Linguistics.
package kilgarriff

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/stylo-cli/stylo/internal/freq"
)

// maxContributors caps the per-comparison attribution list.
const maxContributors = 10

// ErrInvalidInput reports a comparison precondition failure, such as an
// empty frequency table. Callers can match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Contribution attributes a share of the chi-squared value to one word.
type Contribution struct {
	Word  string  `json:"word"`
	Value float64 `json:"contribution"`
}

// Comparison is the immutable result of comparing two frequency tables.
type Comparison struct {
	ChiSquared       float64        `json:"chi_squared"`
	DegreesOfFreedom int            `json:"degrees_of_freedom"`
	TopContributors  []Contribution `json:"top_words"`
	SizeA            int            `json:"window_i_size"`
	SizeB            int            `json:"window_j_size"`
}

// Compare computes Kilgarriff's chi-squared distance between two frequency
// tables over the nWords most frequent words of their joint vocabulary.
//
// Parameters:
//   - a, b: frequency tables for the two segments under comparison
//   - nWords: number of most frequent joint words to analyze
//
// Returns a Comparison with the chi-squared value, degrees of freedom
// (words actually used minus one), and the top contributing words sorted by
// contribution descending.
//
// The computation is symmetric: Compare(a, b) and Compare(b, a) yield the
// same chi-squared value. It fails with ErrInvalidInput when either table
// has a zero total or nWords is not positive.
func Compare(a, b *freq.Table, nWords int) (*Comparison, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil frequency table", ErrInvalidInput)
	}
	if a.Total == 0 || b.Total == 0 {
		return nil, fmt.Errorf("%w: cannot compare empty segment (sizes %d and %d)", ErrInvalidInput, a.Total, b.Total)
	}
	if nWords < 1 {
		return nil, fmt.Errorf("%w: n_words must be positive, got %d", ErrInvalidInput, nWords)
	}

	joint := freq.Joint(a, b)
	selected := joint.TopN(nWords)

	sizeA := float64(a.Total)
	sizeB := float64(b.Total)
	combined := sizeA + sizeB

	contributions := make([]Contribution, 0, len(selected))
	var chiSquared float64

	for _, wc := range selected {
		observedA := float64(a.Count(wc.Word))
		observedB := float64(b.Count(wc.Word))
		jointCount := float64(wc.Count)

		expectedA := jointCount * sizeA / combined
		expectedB := jointCount * sizeB / combined

		// a joint top-N word always has a nonzero joint count, so the
		// expected counts can only vanish if a side were empty, which the
		// precondition above rules out; the guard stays for safety
		var contribution float64
		if expectedA > 0 && expectedB > 0 {
			devA := observedA - expectedA
			devB := observedB - expectedB
			contribution = devA*devA/expectedA + devB*devB/expectedB
		}

		chiSquared += contribution
		contributions = append(contributions, Contribution{Word: wc.Word, Value: contribution})
	}

	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].Value != contributions[j].Value {
			return contributions[i].Value > contributions[j].Value
		}
		return contributions[i].Word < contributions[j].Word
	})
	if len(contributions) > maxContributors {
		contributions = contributions[:maxContributors]
	}

	slog.Debug("Chi-squared comparison completed",
		"chiSquared", chiSquared, "wordsUsed", len(selected), "sizeA", a.Total, "sizeB", b.Total)

	return &Comparison{
		ChiSquared:       chiSquared,
		DegreesOfFreedom: len(selected) - 1,
		TopContributors:  contributions,
		SizeA:            a.Total,
		SizeB:            b.Total,
	}, nil
}
