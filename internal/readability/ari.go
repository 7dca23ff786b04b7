package readability

import "math"

// ARIScore is the Automated Readability Index with its supporting counts.
type ARIScore struct {
	Score          float64 `json:"ari_score"`
	GradeLevel     int     `json:"grade_level"`
	AgeRange       string  `json:"age_range"`
	SentenceCount  int     `json:"sentence_count"`
	WordCount      int     `json:"word_count"`
	CharacterCount int     `json:"character_count"`
}

// ARI computes the Automated Readability Index:
//
//	ARI = 4.71*(characters/words) + 0.5*(words/sentences) - 21.43
//
// Characters are letters and digits only. The score approximates the US
// grade level needed to follow the text; the grade is the rounded score,
// floored at zero. Empty input returns a zero score with an "Unknown" age
// range.
func ARI(text string) (*ARIScore, error) {
	st, err := analyze(text)
	if err != nil {
		return nil, err
	}
	if st.empty() {
		return &ARIScore{AgeRange: "Unknown"}, nil
	}

	cpw := float64(st.alnum) / float64(len(st.words))
	score := 4.71*cpw + 0.5*st.wordsPerSentence() - 21.43

	grade := int(math.Round(score))
	if grade < 0 {
		grade = 0
	}

	return &ARIScore{
		Score:          score,
		GradeLevel:     grade,
		AgeRange:       ariAgeRange(grade),
		SentenceCount:  st.sentences,
		WordCount:      len(st.words),
		CharacterCount: st.alnum,
	}, nil
}

func ariAgeRange(grade int) string {
	switch {
	case grade <= 5:
		return "5-11 years"
	case grade <= 8:
		return "11-14 years"
	case grade <= 12:
		return "14-18 years"
	case grade <= 14:
		return "18-22 years"
	default:
		return "22+ years"
	}
}
