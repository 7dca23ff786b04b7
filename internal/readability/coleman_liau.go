package readability

import "math"

// ColemanLiauScore is the Coleman-Liau Index with its per-100-word inputs.
type ColemanLiauScore struct {
	Index                float64 `json:"cli_index"`
	GradeLevel           int     `json:"grade_level"`
	SentenceCount        int     `json:"sentence_count"`
	WordCount            int     `json:"word_count"`
	LetterCount          int     `json:"letter_count"`
	LettersPer100Words   float64 `json:"letters_per_100_words"`
	SentencesPer100Words float64 `json:"sentences_per_100_words"`
}

// ColemanLiau computes the Coleman-Liau Index:
//
//	CLI = 0.0588*L - 0.296*S - 15.8
//
// where L is letters per 100 words and S is sentences per 100 words. It
// relies on characters instead of syllables, so it sidesteps the syllable
// heuristic entirely.
func ColemanLiau(text string) (*ColemanLiauScore, error) {
	st, err := analyze(text)
	if err != nil {
		return nil, err
	}
	if st.empty() {
		return &ColemanLiauScore{}, nil
	}

	l := float64(st.letters) / float64(len(st.words)) * 100
	s := float64(st.sentences) / float64(len(st.words)) * 100
	index := 0.0588*l - 0.296*s - 15.8

	grade := int(math.Round(index))
	if grade < 0 {
		grade = 0
	}

	return &ColemanLiauScore{
		Index:                index,
		GradeLevel:           grade,
		SentenceCount:        st.sentences,
		WordCount:            len(st.words),
		LetterCount:          st.letters,
		LettersPer100Words:   l,
		SentencesPer100Words: s,
	}, nil
}
