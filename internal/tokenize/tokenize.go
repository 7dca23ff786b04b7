// Package tokenize adapts the prose NLP library to the token contracts the
// analysis packages consume.
//
// All stylometric computations operate on normalized word tokens: lowercase,
// alphabetic-only, in document order. Sentence segmentation backs the
// readability formulas. Both are centralized here so every analyzer sees the
// same token stream for the same input.
//
// Usage Example:
//
//	words, err := tokenize.Words("The quick brown fox.")
//	// words == []string{"the", "quick", "brown", "fox"}
package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Words returns the normalized word tokens of text in document order.
// Tokens are lowercased and filtered to purely alphabetic strings;
// punctuation, numbers, and mixed tokens are dropped.
//
// Returns an empty slice (not an error) for blank input.
func Words(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize text: %w", err)
	}

	raw := doc.Tokens()
	words := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !isAlphabetic(tok.Text) {
			continue
		}
		words = append(words, strings.ToLower(tok.Text))
	}
	return words, nil
}

// Sentences returns the sentence texts of text in document order, using
// prose's sentence boundary detection.
func Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segment sentences: %w", err)
	}

	raw := doc.Sentences()
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences, nil
}

// isAlphabetic reports whether every rune in s is a letter. Empty strings
// are not alphabetic.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
