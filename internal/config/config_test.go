package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stylo-cli/stylo/internal/drift"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stylo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := writeConfig(t, `
window_size: 800
stride: 400
mode: all_pairs
n_words: 300
thresholds:
  min_windows: 4
  spike_ratio: 3.0
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cfg := f.Apply(drift.DefaultConfig())
	if cfg.WindowSize != 800 || cfg.Stride != 400 {
		t.Errorf("window = %d/%d, want 800/400", cfg.WindowSize, cfg.Stride)
	}
	if cfg.Mode != drift.ModeAllPairs {
		t.Errorf("Mode = %q, want all_pairs", cfg.Mode)
	}
	if cfg.NWords != 300 {
		t.Errorf("NWords = %d, want 300", cfg.NWords)
	}
	if cfg.Thresholds.MinWindows != 4 {
		t.Errorf("MinWindows = %d, want 4", cfg.Thresholds.MinWindows)
	}
	if cfg.Thresholds.SpikeRatio != 3.0 {
		t.Errorf("SpikeRatio = %f, want 3.0", cfg.Thresholds.SpikeRatio)
	}

	// Unset fields keep defaults.
	def := drift.DefaultThresholds()
	if cfg.Thresholds.UniformCVThreshold != def.UniformCVThreshold {
		t.Errorf("UniformCVThreshold = %f, want default %f",
			cfg.Thresholds.UniformCVThreshold, def.UniformCVThreshold)
	}
	if cfg.Lag != drift.DefaultLag {
		t.Errorf("Lag = %d, want default", cfg.Lag)
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	def := drift.DefaultConfig()
	cfg := f.Apply(def)
	if cfg != def {
		t.Errorf("empty config changed settings: %+v vs %+v", cfg, def)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "window_size: [not a number")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
