// Package config loads analysis settings from YAML files.
//
// A config file can override any drift classification threshold and the
// default window parameters:
//
//	window_size: 800
//	stride: 400
//	mode: sequential
//	n_words: 300
//	thresholds:
//	  min_windows: 4
//	  spike_ratio: 3.0
//
// Omitted fields keep their defaults, so a file can override a single
// threshold without restating the rest.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stylo-cli/stylo/internal/drift"
)

// File is the on-disk analysis configuration.
type File struct {
	WindowSize int              `yaml:"window_size"`
	Stride     int              `yaml:"stride"`
	Mode       string           `yaml:"mode"`
	Lag        int              `yaml:"lag"`
	NWords     int              `yaml:"n_words"`
	Thresholds drift.Thresholds `yaml:"thresholds"`
}

// Load reads a YAML config file and merges it over the drift defaults.
// Fields the file leaves unset keep their default values.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &f, nil
}

// Apply overlays the file's settings onto a drift config. Zero-valued
// fields are treated as unset. Threshold overrides merge field by field,
// so a file naming only spike_ratio keeps the default for everything
// else.
func (f *File) Apply(cfg drift.Config) drift.Config {
	if f.WindowSize > 0 {
		cfg.WindowSize = f.WindowSize
	}
	if f.Stride > 0 {
		cfg.Stride = f.Stride
	}
	if f.Mode != "" {
		cfg.Mode = drift.Mode(f.Mode)
	}
	if f.Lag > 0 {
		cfg.Lag = f.Lag
	}
	if f.NWords > 0 {
		cfg.NWords = f.NWords
	}
	cfg.Thresholds = mergeThresholds(cfg.Thresholds, f.Thresholds)
	return cfg
}

func mergeThresholds(base, over drift.Thresholds) drift.Thresholds {
	if over.MinWindows > 0 {
		base.MinWindows = over.MinWindows
	}
	if over.RecommendedWindows > 0 {
		base.RecommendedWindows = over.RecommendedWindows
	}
	if over.UniformCVThreshold > 0 {
		base.UniformCVThreshold = over.UniformCVThreshold
	}
	if over.UniformMeanThreshold > 0 {
		base.UniformMeanThreshold = over.UniformMeanThreshold
	}
	if over.SpikeRatio > 0 {
		base.SpikeRatio = over.SpikeRatio
	}
	if over.SpikeMinAbsolute > 0 {
		base.SpikeMinAbsolute = over.SpikeMinAbsolute
	}
	if over.TrendSlopeThreshold > 0 {
		base.TrendSlopeThreshold = over.TrendSlopeThreshold
	}
	if over.TrendRSquaredThreshold > 0 {
		base.TrendRSquaredThreshold = over.TrendRSquaredThreshold
	}
	if over.ConfidenceMinWindows > 0 {
		base.ConfidenceMinWindows = over.ConfidenceMinWindows
	}
	if over.MarginalDataMaxConfidence > 0 {
		base.MarginalDataMaxConfidence = over.MarginalDataMaxConfidence
	}
	return base
}
