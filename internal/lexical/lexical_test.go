package lexical

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTTR(t *testing.T) {
	tokens := []string{"a", "b", "a", "c", "b", "a"}
	res := ComputeTTR(tokens, 3)

	if !near(res.TTR, 0.5) {
		t.Errorf("TTR = %f, want 0.5", res.TTR)
	}
	if !near(res.RootTTR, 3/math.Sqrt(6)) {
		t.Errorf("RootTTR = %f, want %f", res.RootTTR, 3/math.Sqrt(6))
	}
	if !near(res.LogTTR, math.Log(3)/math.Log(6)) {
		t.Errorf("LogTTR = %f, want %f", res.LogTTR, math.Log(3)/math.Log(6))
	}

	// Chunks: [a b a] ttr 2/3, [c b a] ttr 1.
	if res.ChunkCount != 2 {
		t.Fatalf("ChunkCount = %d, want 2", res.ChunkCount)
	}
	if !near(res.STTR, 5.0/6.0) {
		t.Errorf("STTR = %f, want %f", res.STTR, 5.0/6.0)
	}
	if !near(res.STTRStd, 1.0/6.0) {
		t.Errorf("STTRStd = %f, want %f", res.STTRStd, 1.0/6.0)
	}
}

func TestComputeTTRShortText(t *testing.T) {
	res := ComputeTTR([]string{"a", "b"}, 1000)
	if res.ChunkCount != 0 {
		t.Errorf("ChunkCount = %d, want 0", res.ChunkCount)
	}
	if !near(res.STTR, res.TTR) {
		t.Errorf("STTR = %f, want raw TTR %f", res.STTR, res.TTR)
	}
	if res.STTRStd != 0 {
		t.Errorf("STTRStd = %f, want 0", res.STTRStd)
	}
}

func TestComputeTTREmpty(t *testing.T) {
	res := ComputeTTR(nil, 0)
	if !math.IsNaN(res.TTR) || !math.IsNaN(res.STTR) {
		t.Errorf("empty input should yield NaN ratios, got %f / %f", res.TTR, res.STTR)
	}
	if res.TokenCount != 0 || res.TypeCount != 0 {
		t.Errorf("counts = %d / %d, want zero", res.TokenCount, res.TypeCount)
	}
}

func TestYule(t *testing.T) {
	// Counts a:2 b:1, so S2 = 5, N = 3.
	res := Yule([]string{"a", "a", "b"})
	if !near(res.K, 1e4*2/9) {
		t.Errorf("K = %f, want %f", res.K, 1e4*2/9)
	}
	if !near(res.I, 4.5) {
		t.Errorf("I = %f, want 4.5", res.I)
	}
}

func TestYuleAllDistinct(t *testing.T) {
	res := Yule([]string{"a", "b", "c"})
	if res.K != 0 {
		t.Errorf("K = %f, want 0", res.K)
	}
	if !math.IsInf(res.I, 1) {
		t.Errorf("I = %f, want +Inf", res.I)
	}
}

func TestYuleEmpty(t *testing.T) {
	res := Yule(nil)
	if !math.IsNaN(res.K) || !math.IsNaN(res.I) {
		t.Errorf("empty input should yield NaN, got K=%f I=%f", res.K, res.I)
	}
}

func TestHapax(t *testing.T) {
	res := Hapax([]string{"a", "a", "b", "c"})

	if res.HapaxCount != 2 || res.DislegomenaCount != 1 {
		t.Fatalf("counts = %d hapax, %d dislegomena", res.HapaxCount, res.DislegomenaCount)
	}
	if !near(res.HapaxRatio, 0.5) {
		t.Errorf("HapaxRatio = %f, want 0.5", res.HapaxRatio)
	}
	if !near(res.DislegomenaRatio, 0.25) {
		t.Errorf("DislegomenaRatio = %f, want 0.25", res.DislegomenaRatio)
	}
	if !near(res.SichelS, 1.0/3.0) {
		t.Errorf("SichelS = %f, want 1/3", res.SichelS)
	}
	want := 100 * math.Log(4) / (1 - 2.0/3.0)
	if !near(res.HonoreR, want) {
		t.Errorf("HonoreR = %f, want %f", res.HonoreR, want)
	}
}

func TestHapaxAllUnique(t *testing.T) {
	res := Hapax([]string{"a", "b", "c"})
	if !math.IsInf(res.HonoreR, 1) {
		t.Errorf("HonoreR = %f, want +Inf when every word is a hapax", res.HonoreR)
	}
}

func TestHapaxEmpty(t *testing.T) {
	res := Hapax(nil)
	if res.HapaxCount != 0 || res.HonoreR != 0 {
		t.Errorf("empty input: %+v", res)
	}
}

func TestMTLDThresholdValidation(t *testing.T) {
	for _, th := range []float64{-0.5, 1, 1.5} {
		if _, err := MTLD([]string{"a"}, th); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %v: err = %v, want ErrInvalidThreshold", th, err)
		}
	}
	if _, err := MTLD([]string{"a"}, 0); err != nil {
		t.Errorf("zero threshold should select the default, got %v", err)
	}
}

func TestMTLD(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		threshold float64
		want      float64
	}{
		{
			// TTR never drops below the threshold, so the score is the length.
			name:      "all distinct",
			tokens:    []string{"a", "b", "c", "d"},
			threshold: 0.72,
			want:      4,
		},
		{
			// Each repeated pair completes one factor.
			name:      "fully repetitive",
			tokens:    []string{"a", "a", "a", "a"},
			threshold: 0.72,
			want:      2,
		},
		{
			// Trailing run at TTR 0.75 contributes a partial factor of
			// (1-0.75)/(1-0.7) = 5/6, so MTLD = 4/(5/6).
			name:      "trailing partial factor",
			tokens:    []string{"a", "b", "c", "a"},
			threshold: 0.7,
			want:      4.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := MTLD(tt.tokens, tt.threshold)
			if err != nil {
				t.Fatalf("MTLD() error: %v", err)
			}
			if !near(res.Forward, tt.want) {
				t.Errorf("Forward = %f, want %f", res.Forward, tt.want)
			}
			if !near(res.Average, tt.want) {
				t.Errorf("Average = %f, want %f", res.Average, tt.want)
			}
		})
	}
}

func TestMTLDEmpty(t *testing.T) {
	res, err := MTLD(nil, 0)
	if err != nil {
		t.Fatalf("MTLD() error: %v", err)
	}
	if res.Average != 0 || res.TokenCount != 0 {
		t.Errorf("empty input: %+v", res)
	}
	if !near(res.Threshold, DefaultMTLDThreshold) {
		t.Errorf("Threshold = %f, want default", res.Threshold)
	}
}
