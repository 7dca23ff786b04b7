package drift

import (
	"math"
)

// Pattern names the shapes the drift timeline can take.
type Pattern string

const (
	// PatternConsistent is normal variation with no special structure.
	PatternConsistent Pattern = "consistent"
	// PatternGradualDrift is a sustained trend across the document.
	PatternGradualDrift Pattern = "gradual_drift"
	// PatternSuddenSpike is a single pair far above the rest.
	PatternSuddenSpike Pattern = "sudden_spike"
	// PatternSuspiciouslyUniform is near-zero variance at low distance,
	// a signature of templated or machine-generated text.
	PatternSuspiciouslyUniform Pattern = "suspiciously_uniform"
	// PatternUnknown means too few windows to classify.
	PatternUnknown Pattern = "unknown"
)

// confidence multipliers per pattern; applied to the data-quantity base.
// A default classification carries slightly less certainty than one that
// matched a specific signature.
const (
	spikeConfidenceFactor      = 0.9
	driftConfidenceFactor      = 0.85
	uniformConfidenceFactor    = 0.85
	consistentConfidenceFactor = 0.8
)

// classify maps aggregate statistics to a pattern label and confidence.
//
// The rules are evaluated in a fixed priority order and the first match
// wins; the ordering resolves cases where multiple threshold conditions
// hold at once:
//
//  1. too few windows              -> unknown, confidence 0
//  2. low CV and low mean          -> suspiciously_uniform
//  3. outlier max                  -> sudden_spike
//  4. strong well-fit slope        -> gradual_drift
//  5. otherwise                    -> consistent
//
// A zero mean makes the coefficient of variation +Inf, which can never fall
// under the uniform threshold, so degenerate all-zero score lists classify
// as consistent rather than dividing by zero.
func classify(s summary, windowCount int, th Thresholds) (Pattern, float64) {
	if windowCount < th.MinWindows {
		return PatternUnknown, 0
	}

	cv := math.Inf(1)
	if s.mean > 0 {
		cv = s.std / s.mean
	}

	var pattern Pattern
	var factor float64
	switch {
	case cv < th.UniformCVThreshold && s.mean < th.UniformMeanThreshold:
		pattern, factor = PatternSuspiciouslyUniform, uniformConfidenceFactor
	case s.max >= s.mean+2*s.std &&
		s.max >= th.SpikeRatio*s.mean &&
		s.max-s.mean >= th.SpikeMinAbsolute:
		pattern, factor = PatternSuddenSpike, spikeConfidenceFactor
	case math.Abs(s.slope) >= th.TrendSlopeThreshold && s.rSquared >= th.TrendRSquaredThreshold:
		pattern, factor = PatternGradualDrift, driftConfidenceFactor
	default:
		pattern, factor = PatternConsistent, consistentConfidenceFactor
	}

	return pattern, confidence(windowCount, factor, th)
}

// confidence scales trust with data quantity: a base that grows linearly
// until ConfidenceMinWindows comparisons and saturates at 1.0, scaled by the
// per-pattern factor, then capped for marginal window counts. Monotonically
// non-decreasing in windowCount.
func confidence(windowCount int, factor float64, th Thresholds) float64 {
	base := float64(windowCount) / float64(th.ConfidenceMinWindows)
	if base > 1 {
		base = 1
	}

	c := base * factor
	if windowCount < th.RecommendedWindows && c > th.MarginalDataMaxConfidence {
		c = th.MarginalDataMaxConfidence
	}
	return c
}
