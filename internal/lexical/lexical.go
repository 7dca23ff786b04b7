// Package lexical computes vocabulary richness measures over a token
// stream: the type-token ratio family, Yule's characteristic, hapax-based
// ratios, and MTLD.
//
// All functions take the token slice produced by the tokenize package, so
// every measure sees exactly the same normalization. Token order matters
// only for STTR and MTLD; the other measures depend on frequencies alone.
package lexical

// DefaultChunkSize is the STTR chunk length in tokens.
const DefaultChunkSize = 1000

// DefaultMTLDThreshold is the factor boundary used by MTLD.
const DefaultMTLDThreshold = 0.72
