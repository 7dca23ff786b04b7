package lexical

import (
	"math"

	"github.com/stylo-cli/stylo/internal/freq"
)

// TTRResult carries the type-token ratio family for one token stream.
type TTRResult struct {
	TTR        float64 `json:"ttr"`
	RootTTR    float64 `json:"root_ttr"`
	LogTTR     float64 `json:"log_ttr"`
	STTR       float64 `json:"sttr"`
	STTRStd    float64 `json:"sttr_std"`
	TokenCount int     `json:"token_count"`
	TypeCount  int     `json:"type_count"`
	ChunkCount int     `json:"chunk_count"`
}

// ComputeTTR computes the raw type-token ratio plus the length-corrected
// variants: Root TTR (Guiraud), Log TTR (Herdan), and the standardized TTR
// averaged over consecutive chunks of chunkSize tokens.
//
// STTR uses complete chunks only. When the text is shorter than one chunk,
// STTR falls back to the raw TTR with zero deviation. A chunkSize below 1
// selects DefaultChunkSize. Empty input yields NaN ratios.
func ComputeTTR(tokens []string, chunkSize int) *TTRResult {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	n := len(tokens)
	if n == 0 {
		return &TTRResult{
			TTR:     math.NaN(),
			RootTTR: math.NaN(),
			LogTTR:  math.NaN(),
			STTR:    math.NaN(),
			STTRStd: math.NaN(),
		}
	}

	table := freq.Build(tokens)
	v := len(table.Counts)

	ttr := float64(v) / float64(n)
	logTTR := 0.0
	if n > 1 {
		logTTR = math.Log(float64(v)) / math.Log(float64(n))
	}

	res := &TTRResult{
		TTR:        ttr,
		RootTTR:    float64(v) / math.Sqrt(float64(n)),
		LogTTR:     logTTR,
		TokenCount: n,
		TypeCount:  v,
	}

	chunkTTRs := sttrChunks(tokens, chunkSize)
	res.ChunkCount = len(chunkTTRs)
	if len(chunkTTRs) == 0 {
		res.STTR = ttr
		return res
	}
	res.STTR, res.STTRStd = meanStd(chunkTTRs)
	return res
}

// sttrChunks returns the TTR of each complete chunkSize-token chunk.
func sttrChunks(tokens []string, chunkSize int) []float64 {
	var ttrs []float64
	for start := 0; start+chunkSize <= len(tokens); start += chunkSize {
		chunk := tokens[start : start+chunkSize]
		seen := make(map[string]struct{}, chunkSize)
		for _, tok := range chunk {
			seen[tok] = struct{}{}
		}
		ttrs = append(ttrs, float64(len(seen))/float64(chunkSize))
	}
	return ttrs
}

// meanStd returns the mean and population standard deviation.
func meanStd(values []float64) (float64, float64) {
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}
