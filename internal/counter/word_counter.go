package counter

import "strings"

// WordCounter counts whitespace-separated words.
type WordCounter struct{}

// NewWordCounter creates a WordCounter.
func NewWordCounter() Counter {
	return &WordCounter{}
}

// Count returns the number of words in the text. Splitting follows
// strings.Fields, so any run of Unicode whitespace separates words.
func (wc *WordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

// Name returns the counting method name.
func (wc *WordCounter) Name() string {
	return "words"
}
