package drift

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/stylo-cli/stylo/internal/freq"
	"github.com/stylo-cli/stylo/internal/kilgarriff"
)

// PairScore records the comparison of one window pair.
type PairScore struct {
	Pair             [2]int                    `json:"chunk_pair"`
	ChiSquared       float64                   `json:"chi_squared"`
	DegreesOfFreedom int                       `json:"degrees_of_freedom"`
	TopWords         []kilgarriff.Contribution `json:"top_words"`
	WindowISize      int                       `json:"window_i_size"`
	WindowJSize      int                       `json:"window_j_size"`
}

// summary holds the timeline-level statistics over the pairwise scores.
type summary struct {
	mean     float64
	std      float64
	min      float64
	max      float64
	maxIndex int
	slope    float64
	rSquared float64
}

// pairings enumerates the window index pairs a comparison mode requires.
func pairings(count int, mode Mode, lag int) [][2]int {
	var pairs [][2]int
	switch mode {
	case ModeAllPairs:
		for i := 0; i < count; i++ {
			for j := i + 1; j < count; j++ {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	case ModeFixedLag:
		for i := 0; i+lag < count; i++ {
			pairs = append(pairs, [2]int{i, i + lag})
		}
	default: // sequential
		for i := 0; i+1 < count; i++ {
			pairs = append(pairs, [2]int{i, i + 1})
		}
	}
	return pairs
}

// aggregate compares every window pair the mode requires and reduces the
// chi-squared scores to timeline statistics. In all_pairs mode it also
// builds the full symmetric distance matrix (zero diagonal).
//
// The trend is fit only for the ordered modes (sequential and fixed_lag);
// an unordered all_pairs score list has no timeline, so its slope and R²
// are reported as zero.
//
// Fails with ErrInsufficientData when the mode yields no pairs at all, so
// the caller never sees NaN statistics.
func aggregate(windows []window, mode Mode, lag, nWords int) ([]PairScore, summary, [][]float64, error) {
	pairs := pairings(len(windows), mode, lag)
	if len(pairs) == 0 {
		return nil, summary{}, nil, fmt.Errorf("%w: mode %s yields no window pairs for %d windows",
			ErrInsufficientData, mode, len(windows))
	}

	// frequency tables are built once per window, not once per pair
	tables := make([]*freq.Table, len(windows))
	for i, w := range windows {
		tables[i] = freq.Build(w.tokens)
	}

	scores := make([]PairScore, 0, len(pairs))
	values := make([]float64, 0, len(pairs))

	var matrix [][]float64
	if mode == ModeAllPairs {
		matrix = make([][]float64, len(windows))
		for i := range matrix {
			matrix[i] = make([]float64, len(windows))
		}
	}

	for _, p := range pairs {
		cmp, err := kilgarriff.Compare(tables[p[0]], tables[p[1]], nWords)
		if err != nil {
			return nil, summary{}, nil, fmt.Errorf("compare windows %d and %d: %w", p[0], p[1], err)
		}

		scores = append(scores, PairScore{
			Pair:             p,
			ChiSquared:       cmp.ChiSquared,
			DegreesOfFreedom: cmp.DegreesOfFreedom,
			TopWords:         cmp.TopContributors,
			WindowISize:      cmp.SizeA,
			WindowJSize:      cmp.SizeB,
		})
		values = append(values, cmp.ChiSquared)

		if matrix != nil {
			matrix[p[0]][p[1]] = cmp.ChiSquared
			matrix[p[1]][p[0]] = cmp.ChiSquared
		}
	}

	s := summarize(values)
	if mode != ModeAllPairs {
		s.slope, s.rSquared = computeTrend(values)
	}

	slog.Debug("Drift aggregation completed",
		"mode", mode, "pairs", len(pairs), "meanChiSquared", s.mean, "maxChiSquared", s.max)

	return scores, s, matrix, nil
}

// summarize computes mean, sample standard deviation, min, max, and the
// index of the max over a non-empty value list. With a single value the
// standard deviation is 0.
func summarize(values []float64) summary {
	s := summary{min: values[0], max: values[0]}

	var sum float64
	for i, v := range values {
		sum += v
		if v > s.max {
			s.max = v
			s.maxIndex = i
		}
		if v < s.min {
			s.min = v
		}
	}
	s.mean = sum / float64(len(values))

	if len(values) > 1 {
		var ss float64
		for _, v := range values {
			d := v - s.mean
			ss += d * d
		}
		s.std = math.Sqrt(ss / float64(len(values)-1))
	}
	return s
}
