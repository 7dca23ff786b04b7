// Package drift detects intra-document stylistic drift.
//
// The detector slides fixed-size windows across a token sequence, scores
// adjacent (or all, or lag-separated) window pairs with Kilgarriff's
// chi-squared corpus-comparison statistic, reduces the scores to timeline
// statistics, and classifies the signal into one of five named patterns:
// consistent, gradual_drift, sudden_spike, suspiciously_uniform, or unknown.
//
// Usage Example:
//
//	result, err := drift.Detect(tokens, drift.DefaultConfig())
//	if err != nil { ... }
//	if result.Status == drift.StatusInsufficientData {
//	    // expected for short documents, not an error
//	}
//	fmt.Println(result.Pattern, result.PatternConfidence)
//
// Every invocation is independent, deterministic, and side-effect free;
// short input is reported through the result status, never as an error.
package drift

import (
	"errors"
	"fmt"
	"log/slog"
)

// Default analysis parameters.
const (
	DefaultWindowSize = 1000
	DefaultStride     = 500
	DefaultNWords     = 500
	DefaultLag        = 1
)

// driftMethod tags results with the statistic they were produced by.
const driftMethod = "kilgarriff_drift_2001"

// Mode selects which window pairs are compared.
type Mode string

const (
	// ModeSequential compares each window with its successor.
	ModeSequential Mode = "sequential"
	// ModeAllPairs compares every unordered window pair and produces a
	// full distance matrix.
	ModeAllPairs Mode = "all_pairs"
	// ModeFixedLag compares each window with the window lag positions later.
	ModeFixedLag Mode = "fixed_lag"
)

// Status reports how much the result can be trusted.
type Status string

const (
	// StatusSuccess means enough windows for a confident classification.
	StatusSuccess Status = "success"
	// StatusMarginalData means classifiable but below the recommended
	// window count; confidence is capped.
	StatusMarginalData Status = "marginal_data"
	// StatusInsufficientData means too few windows for any classification.
	StatusInsufficientData Status = "insufficient_data"
)

var (
	// ErrInvalidInput reports malformed configuration. It fails fast,
	// before any computation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData is internal to aggregation; the orchestrator
	// recovers it into StatusInsufficientData rather than returning it.
	ErrInsufficientData = errors.New("insufficient data")
)

// Config holds the analysis parameters. The zero value of Thresholds means
// "use DefaultThresholds".
type Config struct {
	WindowSize int
	Stride     int
	Mode       Mode
	Lag        int
	NWords     int
	Thresholds Thresholds
}

// DefaultConfig returns the standard drift detection configuration:
// 1000-token windows advanced by 500 tokens, sequential comparison over the
// top 500 joint words.
func DefaultConfig() Config {
	return Config{
		WindowSize: DefaultWindowSize,
		Stride:     DefaultStride,
		Mode:       ModeSequential,
		Lag:        DefaultLag,
		NWords:     DefaultNWords,
		Thresholds: DefaultThresholds(),
	}
}

// validate fails fast on configuration errors; these are caller bugs, not
// data conditions, and are never coerced.
func (c Config) validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("%w: window_size must be positive, got %d", ErrInvalidInput, c.WindowSize)
	}
	if c.Stride <= 0 {
		return fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidInput, c.Stride)
	}
	if c.Lag < 1 {
		return fmt.Errorf("%w: lag must be at least 1, got %d", ErrInvalidInput, c.Lag)
	}
	if c.NWords < 1 {
		return fmt.Errorf("%w: n_words must be positive, got %d", ErrInvalidInput, c.NWords)
	}
	switch c.Mode {
	case ModeSequential, ModeAllPairs, ModeFixedLag:
	default:
		return fmt.Errorf("%w: comparison_mode must be one of sequential, all_pairs, fixed_lag; got %q",
			ErrInvalidInput, c.Mode)
	}
	return nil
}

// Metadata carries non-contractual context about one analysis run.
type Metadata struct {
	TotalTokens     int    `json:"total_tokens"`
	TokensPerWindow int    `json:"tokens_per_window"`
	ComparisonsMade int    `json:"comparisons_made"`
	NWords          int    `json:"n_words"`
	Method          string `json:"method"`
}

// Result is the complete outcome of one drift analysis. It is immutable
// after construction and owned by the caller.
type Result struct {
	Status            Status             `json:"status"`
	StatusMessage     string             `json:"status_message"`
	Pattern           Pattern            `json:"pattern"`
	PatternConfidence float64            `json:"pattern_confidence"`
	MeanChiSquared    float64            `json:"mean_chi_squared"`
	StdChiSquared     float64            `json:"std_chi_squared"`
	MaxChiSquared     float64            `json:"max_chi_squared"`
	MinChiSquared     float64            `json:"min_chi_squared"`
	MaxLocation       int                `json:"max_location"`
	Trend             float64            `json:"trend"`
	TrendRSquared     float64            `json:"trend_r_squared"`
	PairwiseScores    []PairScore        `json:"pairwise_scores"`
	WindowSize        int                `json:"window_size"`
	Stride            int                `json:"stride"`
	OverlapRatio      float64            `json:"overlap_ratio"`
	ComparisonMode    Mode               `json:"comparison_mode"`
	WindowCount       int                `json:"window_count"`
	DistanceMatrix    [][]float64        `json:"distance_matrix,omitempty"`
	Thresholds        map[string]float64 `json:"thresholds"`
	Metadata          Metadata           `json:"metadata"`
}

// Detect runs the full drift analysis over a token sequence.
//
// Parameters:
//   - tokens: normalized word tokens in document order (the tokenizer is an
//     external collaborator; see the tokenize package)
//   - cfg: analysis parameters, typically DefaultConfig with overrides
//
// Returns a fully populated Result. Configuration errors return
// ErrInvalidInput; a document too short for the minimum window count is NOT
// an error: it yields StatusInsufficientData with zeroed statistics, since
// short input is an expected, recoverable condition.
func Detect(tokens []string, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	th := cfg.Thresholds
	if th.isZero() {
		th = DefaultThresholds()
	}

	count := windowCount(len(tokens), cfg.WindowSize, cfg.Stride)

	slog.Debug("Drift detection started",
		"tokens", len(tokens), "windowSize", cfg.WindowSize, "stride", cfg.Stride,
		"mode", cfg.Mode, "windowCount", count)

	result := &Result{
		Status:         StatusSuccess,
		Pattern:        PatternUnknown,
		WindowSize:     cfg.WindowSize,
		Stride:         cfg.Stride,
		OverlapRatio:   overlapRatio(cfg.WindowSize, cfg.Stride),
		ComparisonMode: cfg.Mode,
		WindowCount:    count,
		Thresholds:     th.Map(),
		Metadata: Metadata{
			TotalTokens:     len(tokens),
			TokensPerWindow: cfg.WindowSize,
			NWords:          cfg.NWords,
			Method:          driftMethod,
		},
	}

	if count < th.MinWindows {
		result.Status = StatusInsufficientData
		result.StatusMessage = fmt.Sprintf(
			"document yields %d windows of %d tokens (stride %d); at least %d are required. Try a smaller window size or stride",
			count, cfg.WindowSize, cfg.Stride, th.MinWindows)
		return result, nil
	}
	if count < th.RecommendedWindows {
		result.Status = StatusMarginalData
		result.StatusMessage = fmt.Sprintf(
			"only %d windows available; %d or more are recommended for a high-confidence classification",
			count, th.RecommendedWindows)
	}

	windows := makeWindows(tokens, cfg.WindowSize, cfg.Stride)

	scores, stats, matrix, err := aggregate(windows, cfg.Mode, cfg.Lag, cfg.NWords)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			// the mode produced no pairs (e.g. lag >= window count)
			result.Status = StatusInsufficientData
			result.StatusMessage = fmt.Sprintf(
				"%d windows produce no %s comparisons (lag %d); reduce the window size, stride, or lag",
				count, cfg.Mode, cfg.Lag)
			return result, nil
		}
		return nil, err
	}

	pattern, conf := classify(stats, count, th)

	result.Pattern = pattern
	result.PatternConfidence = conf
	result.MeanChiSquared = stats.mean
	result.StdChiSquared = stats.std
	result.MaxChiSquared = stats.max
	result.MinChiSquared = stats.min
	result.MaxLocation = stats.maxIndex
	result.Trend = stats.slope
	result.TrendRSquared = stats.rSquared
	result.PairwiseScores = scores
	result.DistanceMatrix = matrix
	result.Metadata.ComparisonsMade = len(scores)

	slog.Debug("Drift detection completed",
		"status", result.Status, "pattern", result.Pattern, "confidence", result.PatternConfidence)

	return result, nil
}
