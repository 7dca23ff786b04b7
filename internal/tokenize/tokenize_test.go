package tokenize

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
		{
			name: "lowercasing",
			text: "The Quick BROWN fox",
			want: []string{"the", "quick", "brown", "fox"},
		},
		{
			name: "punctuation dropped",
			text: "Hello, world!",
			want: []string{"hello", "world"},
		},
		{
			name: "numbers dropped",
			text: "chapter 42 begins",
			want: []string{"chapter", "begins"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Words(tt.text)
			if err != nil {
				t.Fatalf("Words() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordsPreserveOrder(t *testing.T) {
	got, err := Words("alpha beta gamma alpha")
	if err != nil {
		t.Fatalf("Words() error = %v", err)
	}
	want := []string{"alpha", "beta", "gamma", "alpha"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want document order %v", got, want)
	}
}

func TestSentences(t *testing.T) {
	got, err := Sentences("First sentence here. Second one follows! A third?")
	if err != nil {
		t.Fatalf("Sentences() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("sentence count = %d, want 3 (got %v)", len(got), got)
	}
	for i, s := range got {
		if s == "" {
			t.Errorf("sentence %d is empty", i)
		}
	}
}

func TestSentencesEmpty(t *testing.T) {
	got, err := Sentences("")
	if err != nil {
		t.Fatalf("Sentences() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Sentences(\"\") = %v, want none", got)
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"hello", true},
		{"Héllo", true},
		{"", false},
		{"abc1", false},
		{"it's", false},
		{"-", false},
	}
	for _, tt := range tests {
		if got := isAlphabetic(tt.s); got != tt.want {
			t.Errorf("isAlphabetic(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
