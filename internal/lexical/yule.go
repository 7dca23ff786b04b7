package lexical

import (
	"math"

	"github.com/stylo-cli/stylo/internal/freq"
)

// YuleResult holds Yule's characteristic K and its inverse I.
type YuleResult struct {
	K          float64 `json:"yule_k"`
	I          float64 `json:"yule_i"`
	TokenCount int     `json:"token_count"`
	TypeCount  int     `json:"type_count"`
}

// Yule computes Yule's characteristic K and Yule's I from the frequency
// spectrum of the token stream:
//
//	K = 10^4 * (S2 - N) / N^2
//	I = N^2 / (S2 - N)
//
// where N is the token count and S2 = sum over frequencies m of m^2 * Vm.
// K is robust to text length and rises with repetitiveness; I is its
// inverse and rises with diversity. A text of all-distinct tokens has
// K = 0 and I = +Inf. Empty input yields NaN for both.
func Yule(tokens []string) *YuleResult {
	n := len(tokens)
	if n == 0 {
		return &YuleResult{K: math.NaN(), I: math.NaN()}
	}

	table := freq.Build(tokens)

	s2 := 0.0
	for _, count := range table.Counts {
		m := float64(count)
		s2 += m * m
	}

	nf := float64(n)
	k := 1e4 * (s2 - nf) / (nf * nf)

	i := math.Inf(1)
	if s2 > nf {
		i = nf * nf / (s2 - nf)
	}

	return &YuleResult{
		K:          k,
		I:          i,
		TokenCount: n,
		TypeCount:  len(table.Counts),
	}
}
