package drift

// Thresholds holds every tunable constant used by window validation and
// pattern classification. The zero value is not meaningful; start from
// DefaultThresholds and override selectively (e.g. from a YAML file).
//
// Keeping these in a struct rather than package constants makes the
// classification reasoning auditable and overridable: every Result carries
// the threshold set that produced it.
type Thresholds struct {
	// MinWindows is the minimum window count for any classification.
	MinWindows int `yaml:"min_windows" json:"min_windows"`

	// RecommendedWindows is the count below which results are marginal.
	RecommendedWindows int `yaml:"recommended_windows" json:"recommended_windows"`

	// UniformCVThreshold is the coefficient-of-variation ceiling for the
	// suspiciously_uniform pattern.
	UniformCVThreshold float64 `yaml:"uniform_cv_threshold" json:"uniform_cv_threshold"`

	// UniformMeanThreshold is the mean chi-squared ceiling for
	// suspiciously_uniform.
	UniformMeanThreshold float64 `yaml:"uniform_mean_threshold" json:"uniform_mean_threshold"`

	// SpikeRatio is the max/mean multiple required for sudden_spike.
	SpikeRatio float64 `yaml:"spike_ratio" json:"spike_ratio"`

	// SpikeMinAbsolute is the minimum max-minus-mean gap for sudden_spike.
	SpikeMinAbsolute float64 `yaml:"spike_min_absolute" json:"spike_min_absolute"`

	// TrendSlopeThreshold is the minimum absolute OLS slope for gradual_drift.
	TrendSlopeThreshold float64 `yaml:"trend_slope_threshold" json:"trend_slope_threshold"`

	// TrendRSquaredThreshold is the minimum fit quality for gradual_drift.
	TrendRSquaredThreshold float64 `yaml:"trend_r_squared_threshold" json:"trend_r_squared_threshold"`

	// ConfidenceMinWindows is the window count at which base confidence
	// reaches its cap.
	ConfidenceMinWindows int `yaml:"confidence_min_windows" json:"confidence_min_windows"`

	// MarginalDataMaxConfidence caps confidence for marginal-data results.
	MarginalDataMaxConfidence float64 `yaml:"marginal_data_max_confidence" json:"marginal_data_max_confidence"`
}

// DefaultThresholds returns the standard threshold set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinWindows:                3,
		RecommendedWindows:        5,
		UniformCVThreshold:        0.15,
		UniformMeanThreshold:      50.0,
		SpikeRatio:                2.5,
		SpikeMinAbsolute:          100.0,
		TrendSlopeThreshold:       5.0,
		TrendRSquaredThreshold:    0.3,
		ConfidenceMinWindows:      5,
		MarginalDataMaxConfidence: 0.6,
	}
}

// Map returns the threshold set as a fresh name-to-value map for result
// serialization. Every call returns a new map, so callers may mutate the
// result freely.
func (t Thresholds) Map() map[string]float64 {
	return map[string]float64{
		"min_windows":                  float64(t.MinWindows),
		"recommended_windows":          float64(t.RecommendedWindows),
		"uniform_cv_threshold":         t.UniformCVThreshold,
		"uniform_mean_threshold":       t.UniformMeanThreshold,
		"spike_ratio":                  t.SpikeRatio,
		"spike_min_absolute":           t.SpikeMinAbsolute,
		"trend_slope_threshold":        t.TrendSlopeThreshold,
		"trend_r_squared_threshold":    t.TrendRSquaredThreshold,
		"confidence_min_windows":       float64(t.ConfidenceMinWindows),
		"marginal_data_max_confidence": t.MarginalDataMaxConfidence,
	}
}

// isZero reports whether the threshold set is entirely unset, which the
// orchestrator treats as "use defaults".
func (t Thresholds) isZero() bool {
	return t == Thresholds{}
}
