// Package authorship compares two complete texts for stylistic similarity
// using Kilgarriff's chi-squared corpus distance.
//
// This is the cross-document companion to the sliding-window drift
// analysis: instead of comparing windows of one document against each
// other, it compares two documents directly over their most frequent
// words. The score is a relative distance, not a calibrated probability;
// it is meaningful when ranking candidate pairs against each other.
package authorship

import (
	"fmt"

	"github.com/stylo-cli/stylo/internal/freq"
	"github.com/stylo-cli/stylo/internal/kilgarriff"
	"github.com/stylo-cli/stylo/internal/tokenize"
)

// DefaultMFW is the number of most frequent words examined when the
// caller does not choose one.
const DefaultMFW = 100

// KilgarriffResult is the chi-squared distance between two texts.
type KilgarriffResult struct {
	ChiSquared       float64                   `json:"chi_squared"`
	DegreesOfFreedom int                       `json:"degrees_of_freedom"`
	MFW              int                       `json:"mfw"`
	TopWords         []kilgarriff.Contribution `json:"top_words"`
	TokenCount1      int                       `json:"token_count_1"`
	TokenCount2      int                       `json:"token_count_2"`
}

// Kilgarriff tokenizes both texts and computes the chi-squared distance
// over their mfw most frequent joint words. The top contributing words
// identify what distinguishes the two texts most strongly. An mfw below 1
// selects DefaultMFW.
//
// Returns kilgarriff.ErrInvalidInput (wrapped) when either text has no
// tokens.
func Kilgarriff(text1, text2 string, mfw int) (*KilgarriffResult, error) {
	if mfw < 1 {
		mfw = DefaultMFW
	}

	tokens1, err := tokenize.Words(text1)
	if err != nil {
		return nil, fmt.Errorf("tokenizing first text: %w", err)
	}
	tokens2, err := tokenize.Words(text2)
	if err != nil {
		return nil, fmt.Errorf("tokenizing second text: %w", err)
	}

	cmp, err := kilgarriff.Compare(freq.Build(tokens1), freq.Build(tokens2), mfw)
	if err != nil {
		return nil, fmt.Errorf("comparing texts: %w", err)
	}

	return &KilgarriffResult{
		ChiSquared:       cmp.ChiSquared,
		DegreesOfFreedom: cmp.DegreesOfFreedom,
		MFW:              mfw,
		TopWords:         cmp.TopContributors,
		TokenCount1:      len(tokens1),
		TokenCount2:      len(tokens2),
	}, nil
}
