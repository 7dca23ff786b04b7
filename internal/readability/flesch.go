package readability

import "math"

// FleschScore carries both Flesch measures plus the counts they derive from.
type FleschScore struct {
	ReadingEase   float64 `json:"reading_ease"`
	GradeLevel    float64 `json:"grade_level"`
	Difficulty    string  `json:"difficulty"`
	SentenceCount int     `json:"sentence_count"`
	WordCount     int     `json:"word_count"`
	SyllableCount int     `json:"syllable_count"`
}

// Flesch computes Flesch Reading Ease and the Flesch-Kincaid Grade Level.
//
// Reading Ease = 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words);
// higher is easier, typically 0-100 but unbounded on both sides.
// Grade Level = 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
//
// The difficulty label is derived from the reading ease score alone; the two
// measures weight sentence length differently and may disagree. Empty input
// yields NaN scores and a difficulty of "Unknown".
func Flesch(text string) (*FleschScore, error) {
	st, err := analyze(text)
	if err != nil {
		return nil, err
	}
	if st.empty() {
		return &FleschScore{
			ReadingEase: math.NaN(),
			GradeLevel:  math.NaN(),
			Difficulty:  "Unknown",
		}, nil
	}

	syllables := 0
	for _, w := range st.words {
		syllables += CountSyllables(w)
	}

	wps := st.wordsPerSentence()
	spw := float64(syllables) / float64(len(st.words))

	ease := 206.835 - 1.015*wps - 84.6*spw
	grade := 0.39*wps + 11.8*spw - 15.59

	return &FleschScore{
		ReadingEase:   ease,
		GradeLevel:    grade,
		Difficulty:    fleschDifficulty(ease),
		SentenceCount: st.sentences,
		WordCount:     len(st.words),
		SyllableCount: syllables,
	}, nil
}

func fleschDifficulty(ease float64) string {
	switch {
	case ease >= 90:
		return "Very Easy"
	case ease >= 80:
		return "Easy"
	case ease >= 70:
		return "Fairly Easy"
	case ease >= 60:
		return "Standard"
	case ease >= 50:
		return "Fairly Difficult"
	case ease >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}
