package lexical

import (
	"errors"
	"fmt"
)

// ErrInvalidThreshold reports an MTLD threshold outside (0, 1).
var ErrInvalidThreshold = errors.New("invalid threshold")

// MTLDResult holds directional and averaged MTLD scores.
type MTLDResult struct {
	Forward    float64 `json:"mtld_forward"`
	Backward   float64 `json:"mtld_backward"`
	Average    float64 `json:"mtld_average"`
	TokenCount int     `json:"token_count"`
	Threshold  float64 `json:"threshold"`
}

// MTLD computes the Measure of Textual Lexical Diversity: the mean length
// of sequential token runs that keep their type-token ratio at or above
// the threshold. A run whose TTR falls below the threshold completes one
// factor; a trailing run contributes a partial factor weighted by how far
// its TTR has fallen toward the threshold. The score is computed forward
// and backward and the two are averaged.
//
// The threshold must lie strictly between 0 and 1; a threshold of 0
// selects DefaultMTLDThreshold.
func MTLD(tokens []string, threshold float64) (*MTLDResult, error) {
	if threshold == 0 {
		threshold = DefaultMTLDThreshold
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("%w: threshold %v must be in (0, 1)", ErrInvalidThreshold, threshold)
	}
	if len(tokens) == 0 {
		return &MTLDResult{Threshold: threshold}, nil
	}

	fwd := mtldPass(tokens, threshold, true)
	bwd := mtldPass(tokens, threshold, false)

	return &MTLDResult{
		Forward:    fwd,
		Backward:   bwd,
		Average:    (fwd + bwd) / 2,
		TokenCount: len(tokens),
		Threshold:  threshold,
	}, nil
}

func mtldPass(tokens []string, threshold float64, forward bool) float64 {
	n := len(tokens)
	factors := 0.0
	count := 0
	types := make(map[string]struct{})

	for i := 0; i < n; i++ {
		tok := tokens[i]
		if !forward {
			tok = tokens[n-1-i]
		}
		count++
		types[tok] = struct{}{}

		ttr := float64(len(types)) / float64(count)
		if ttr < threshold {
			factors++
			count = 0
			types = make(map[string]struct{})
		}
	}

	// trailing partial factor
	if count > 0 {
		ttr := float64(len(types)) / float64(count)
		if ttr >= threshold {
			factors += (1 - ttr) / (1 - threshold)
		}
	}

	if factors == 0 {
		return float64(n)
	}
	return float64(n) / factors
}
