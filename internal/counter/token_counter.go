package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter counts tokens using tiktoken with the cl100k_base encoding.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	mu       sync.RWMutex
}

// NewTokenCounter loads the cl100k_base encoding.
func NewTokenCounter() (Counter, error) {
	slog.Debug("initializing token counter", "encoding", "cl100k_base")

	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("initializing cl100k_base encoding: %w", err)
	}
	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the number of tokens in the text. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// nil allow/disallow lists mean no special token handling
	tokens := tc.encoding.Encode(text, nil, nil)

	slog.Debug("token count", "textLength", len(text), "tokens", len(tokens))
	return len(tokens)
}

// Name returns the counting method name.
func (tc *TokenCounter) Name() string {
	return "tokens (cl100k_base)"
}
