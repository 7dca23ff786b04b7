package readability

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"the", 1},
		{"rhythm", 1},
		{"syzygy", 3},
		{"queue", 1},
		{"obfuscation", 4},
		{"HELLO", 2},
		{"  spaced  ", 2},
		{"", 0},
		{"xyz", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.want {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}
