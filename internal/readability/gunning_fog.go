package readability

import (
	"math"
	"strings"
)

// GunningFogScore is the Gunning Fog Index with its complex-word breakdown.
type GunningFogScore struct {
	Index            float64 `json:"fog_index"`
	GradeLevel       int     `json:"grade_level"`
	SentenceCount    int     `json:"sentence_count"`
	WordCount        int     `json:"word_count"`
	ComplexWordCount int     `json:"complex_word_count"`
	ComplexWordRatio float64 `json:"complex_word_ratio"`
}

// GunningFog computes the Gunning Fog Index:
//
//	Fog = 0.4 * ((words/sentences) + 100*(complex words/words))
//
// A complex word has three or more syllables after stripping the common
// inflectional endings -es, -ed and -ing, per Gunning's original criteria.
// Proper-noun exclusion is not attempted; the tokenizer lowercases input,
// so capitalization is not recoverable here.
func GunningFog(text string) (*GunningFogScore, error) {
	st, err := analyze(text)
	if err != nil {
		return nil, err
	}
	if st.empty() {
		return &GunningFogScore{}, nil
	}

	complexWords := 0
	for _, w := range st.words {
		if isComplexWord(w) {
			complexWords++
		}
	}
	ratio := float64(complexWords) / float64(len(st.words))

	index := 0.4 * (st.wordsPerSentence() + 100*ratio)

	grade := int(math.Round(index))
	if grade < 0 {
		grade = 0
	}

	return &GunningFogScore{
		Index:            index,
		GradeLevel:       grade,
		SentenceCount:    st.sentences,
		WordCount:        len(st.words),
		ComplexWordCount: complexWords,
		ComplexWordRatio: ratio,
	}, nil
}

func isComplexWord(word string) bool {
	return CountSyllables(stripInflection(word)) >= 3
}

// stripInflection removes a single common verb ending so that inflected
// forms of short words ("happening", "deciphered") are judged on their
// base form.
func stripInflection(word string) string {
	switch {
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return word[:len(word)-3]
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "es") && len(word) > 4:
		return word[:len(word)-2]
	default:
		return word
	}
}
