package lexical

import (
	"math"

	"github.com/stylo-cli/stylo/internal/freq"
)

// HapaxResult holds once- and twice-occurring word counts and the richness
// measures derived from them.
type HapaxResult struct {
	HapaxCount       int     `json:"hapax_count"`
	HapaxRatio       float64 `json:"hapax_ratio"`
	DislegomenaCount int     `json:"dislegomena_count"`
	DislegomenaRatio float64 `json:"dislegomena_ratio"`
	SichelS          float64 `json:"sichel_s"`
	HonoreR          float64 `json:"honore_r"`
	TokenCount       int     `json:"token_count"`
	TypeCount        int     `json:"type_count"`
}

// Hapax counts hapax legomena (words occurring exactly once) and hapax
// dislegomena (exactly twice) and derives:
//
//	Sichel's S = V2 / V
//	Honore's R = 100 * ln(N) / (1 - V1/V)
//
// Honore's R is +Inf when every word is a hapax, since the denominator
// vanishes. Empty input yields zero counts with zero ratios.
func Hapax(tokens []string) *HapaxResult {
	n := len(tokens)
	if n == 0 {
		return &HapaxResult{}
	}

	table := freq.Build(tokens)
	v := len(table.Counts)

	v1, v2 := 0, 0
	for _, count := range table.Counts {
		switch count {
		case 1:
			v1++
		case 2:
			v2++
		}
	}

	honore := math.Inf(1)
	if v1 < v {
		honore = 100 * math.Log(float64(n)) / (1 - float64(v1)/float64(v))
	}

	return &HapaxResult{
		HapaxCount:       v1,
		HapaxRatio:       float64(v1) / float64(n),
		DislegomenaCount: v2,
		DislegomenaRatio: float64(v2) / float64(n),
		SichelS:          float64(v2) / float64(v),
		HonoreR:          honore,
		TokenCount:       n,
		TypeCount:        v,
	}
}
