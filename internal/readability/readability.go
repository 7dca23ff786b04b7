// Package readability computes classic readability formulas over English
// prose: Flesch Reading Ease and Flesch-Kincaid Grade Level, the Automated
// Readability Index, the Coleman-Liau Index, SMOG, and the Gunning Fog Index.
//
// All formulas share one tokenizer and one heuristic syllable counter, so
// scores stay comparable across measures. Flesch scores for empty input are
// NaN rather than zero, so missing data is never mistaken for very hard text.
//
// Usage Example:
//
//	score, err := readability.Flesch(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%.1f (%s)\n", score.ReadingEase, score.Difficulty)
package readability

import (
	"fmt"
	"unicode"

	"github.com/stylo-cli/stylo/internal/tokenize"
)

// textStats holds the shared counts every formula is built from. Letters and
// alphanumerics are counted over the raw text, not the token stream, so
// digits and intra-word punctuation contribute where a formula wants them.
type textStats struct {
	words     []string
	sentences int
	letters   int
	alnum     int
}

func analyze(text string) (*textStats, error) {
	words, err := tokenize.Words(text)
	if err != nil {
		return nil, fmt.Errorf("tokenizing words: %w", err)
	}
	sentences, err := tokenize.Sentences(text)
	if err != nil {
		return nil, fmt.Errorf("splitting sentences: %w", err)
	}

	st := &textStats{words: words, sentences: len(sentences)}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			st.letters++
			st.alnum++
		case unicode.IsDigit(r):
			st.alnum++
		}
	}
	return st, nil
}

func (s *textStats) empty() bool {
	return len(s.words) == 0 || s.sentences == 0
}

func (s *textStats) wordsPerSentence() float64 {
	return float64(len(s.words)) / float64(s.sentences)
}
