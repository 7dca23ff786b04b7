package counter

import "unicode/utf8"

// CharCounter counts Unicode characters, not bytes.
type CharCounter struct{}

// NewCharCounter creates a CharCounter.
func NewCharCounter() Counter {
	return &CharCounter{}
}

// Count returns the number of runes in the text, whitespace included.
func (cc *CharCounter) Count(text string) int {
	return utf8.RuneCountInString(text)
}

// Name returns the counting method name.
func (cc *CharCounter) Name() string {
	return "characters"
}
