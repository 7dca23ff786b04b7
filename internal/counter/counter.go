// Package counter measures document size in tokens, words, and characters.
//
// Token counts use OpenAI's cl100k_base encoding via tiktoken, word counts
// split on whitespace, and character counts are Unicode runes. The three
// strategies share the Counter interface; reports use all three to size a
// document, and callers that only need one can pick it by method.
//
// Usage Example:
//
//	c, err := counter.NewCounter(counter.Tokens)
//	if err != nil {
//		log.Fatal(err)
//	}
//	n := c.Count(text)
package counter

// Counter is a single text measuring strategy.
type Counter interface {
	// Count returns the number of units (tokens, words, or characters) in the text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod selects a counting strategy.
type CountingMethod int

const (
	// Tokens uses tiktoken with cl100k_base encoding (default)
	Tokens CountingMethod = iota
	// Words counts whitespace-separated words
	Words
	// Characters counts Unicode runes including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Tokens:
		return "tokens"
	case Words:
		return "words"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// NewCounter creates a Counter for the given method. Returns an error when
// the counter cannot be initialized, which for token counting means the
// tiktoken encoding failed to load.
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Words:
		return NewWordCounter(), nil
	case Characters:
		return NewCharCounter(), nil
	default:
		return NewTokenCounter()
	}
}

// DocumentStats sizes one document under all three strategies.
type DocumentStats struct {
	Tokens     int `json:"tokens"`
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// Describe measures the text with every strategy. Token counting falls
// back to zero when the encoding cannot be loaded; words and characters
// never fail.
func Describe(text string) DocumentStats {
	stats := DocumentStats{
		Words:      NewWordCounter().Count(text),
		Characters: NewCharCounter().Count(text),
	}
	if tc, err := NewTokenCounter(); err == nil {
		stats.Tokens = tc.Count(text)
	}
	return stats
}
