package readability

import "math"

// minSMOGSentences is the sample size McLaughlin's formula was normed on.
const minSMOGSentences = 30

// SMOGScore is the SMOG index with its polysyllable count. Reliable is
// false when the text has fewer than thirty sentences.
type SMOGScore struct {
	Index             float64 `json:"smog_index"`
	GradeLevel        int     `json:"grade_level"`
	SentenceCount     int     `json:"sentence_count"`
	WordCount         int     `json:"word_count"`
	PolysyllableCount int     `json:"polysyllable_count"`
	Reliable          bool    `json:"reliable"`
}

// SMOG computes the Simple Measure of Gobbledygook:
//
//	SMOG = 1.0430*sqrt(polysyllables * 30/sentences) + 3.1291
//
// where polysyllables are words of three or more syllables. The formula is
// normed on 30-sentence samples; shorter texts still get a score but are
// flagged as unreliable.
func SMOG(text string) (*SMOGScore, error) {
	st, err := analyze(text)
	if err != nil {
		return nil, err
	}
	if st.empty() {
		return &SMOGScore{}, nil
	}

	poly := 0
	for _, w := range st.words {
		if CountSyllables(w) >= 3 {
			poly++
		}
	}

	index := 1.0430*math.Sqrt(float64(poly)*30/float64(st.sentences)) + 3.1291

	grade := int(math.Round(index))
	if grade < 0 {
		grade = 0
	}

	return &SMOGScore{
		Index:             index,
		GradeLevel:        grade,
		SentenceCount:     st.sentences,
		WordCount:         len(st.words),
		PolysyllableCount: poly,
		Reliable:          st.sentences >= minSMOGSentences,
	}, nil
}
