package readability

import (
	"math"
	"testing"
)

const simpleText = "The cat sat."

// Four polysyllabic words, one sentence.
const denseText = "Considerable obfuscation complicates comprehension."

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestFlesch(t *testing.T) {
	score, err := Flesch(simpleText)
	if err != nil {
		t.Fatalf("Flesch() error: %v", err)
	}

	// 3 words, 1 sentence, 3 syllables: wps=3, spw=1.
	if !near(score.ReadingEase, 206.835-1.015*3-84.6) {
		t.Errorf("ReadingEase = %f, want %f", score.ReadingEase, 206.835-1.015*3-84.6)
	}
	if !near(score.GradeLevel, 0.39*3+11.8-15.59) {
		t.Errorf("GradeLevel = %f, want %f", score.GradeLevel, 0.39*3+11.8-15.59)
	}
	if score.Difficulty != "Very Easy" {
		t.Errorf("Difficulty = %q, want Very Easy", score.Difficulty)
	}
	if score.WordCount != 3 || score.SentenceCount != 1 || score.SyllableCount != 3 {
		t.Errorf("counts = %d words, %d sentences, %d syllables",
			score.WordCount, score.SentenceCount, score.SyllableCount)
	}
}

func TestFleschDense(t *testing.T) {
	score, err := Flesch(denseText)
	if err != nil {
		t.Fatalf("Flesch() error: %v", err)
	}
	if score.Difficulty != "Very Difficult" {
		t.Errorf("Difficulty = %q, want Very Difficult", score.Difficulty)
	}
	if score.SyllableCount != 16 {
		t.Errorf("SyllableCount = %d, want 16", score.SyllableCount)
	}
}

func TestFleschEmpty(t *testing.T) {
	score, err := Flesch("")
	if err != nil {
		t.Fatalf("Flesch() error: %v", err)
	}
	if !math.IsNaN(score.ReadingEase) || !math.IsNaN(score.GradeLevel) {
		t.Errorf("empty input should yield NaN scores, got %f / %f",
			score.ReadingEase, score.GradeLevel)
	}
	if score.Difficulty != "Unknown" {
		t.Errorf("Difficulty = %q, want Unknown", score.Difficulty)
	}
}

func TestFleschDifficultyBands(t *testing.T) {
	tests := []struct {
		ease float64
		want string
	}{
		{95, "Very Easy"},
		{90, "Very Easy"},
		{85, "Easy"},
		{75, "Fairly Easy"},
		{65, "Standard"},
		{55, "Fairly Difficult"},
		{40, "Difficult"},
		{29.9, "Very Difficult"},
		{-10, "Very Difficult"},
	}
	for _, tt := range tests {
		if got := fleschDifficulty(tt.ease); got != tt.want {
			t.Errorf("fleschDifficulty(%v) = %q, want %q", tt.ease, got, tt.want)
		}
	}
}

func TestARI(t *testing.T) {
	score, err := ARI(simpleText)
	if err != nil {
		t.Fatalf("ARI() error: %v", err)
	}

	// 9 characters, 3 words, 1 sentence.
	want := 4.71*3 + 0.5*3 - 21.43
	if !near(score.Score, want) {
		t.Errorf("Score = %f, want %f", score.Score, want)
	}
	if score.GradeLevel != 0 {
		t.Errorf("GradeLevel = %d, want 0 (negative scores floor at zero)", score.GradeLevel)
	}
	if score.AgeRange != "5-11 years" {
		t.Errorf("AgeRange = %q", score.AgeRange)
	}
	if score.CharacterCount != 9 {
		t.Errorf("CharacterCount = %d, want 9", score.CharacterCount)
	}
}

func TestARIEmpty(t *testing.T) {
	score, err := ARI("   ")
	if err != nil {
		t.Fatalf("ARI() error: %v", err)
	}
	if score.Score != 0 || score.AgeRange != "Unknown" {
		t.Errorf("empty input: score = %f, age = %q", score.Score, score.AgeRange)
	}
}

func TestARIAgeRanges(t *testing.T) {
	tests := []struct {
		grade int
		want  string
	}{
		{0, "5-11 years"},
		{5, "5-11 years"},
		{7, "11-14 years"},
		{10, "14-18 years"},
		{13, "18-22 years"},
		{16, "22+ years"},
	}
	for _, tt := range tests {
		if got := ariAgeRange(tt.grade); got != tt.want {
			t.Errorf("ariAgeRange(%d) = %q, want %q", tt.grade, got, tt.want)
		}
	}
}

func TestColemanLiau(t *testing.T) {
	score, err := ColemanLiau(simpleText)
	if err != nil {
		t.Fatalf("ColemanLiau() error: %v", err)
	}

	// L = 9/3*100 = 300 letters per 100 words, S = 1/3*100 sentences per 100 words.
	l, s := 300.0, 100.0/3.0
	want := 0.0588*l - 0.296*s - 15.8
	if !near(score.Index, want) {
		t.Errorf("Index = %f, want %f", score.Index, want)
	}
	if !near(score.LettersPer100Words, l) || !near(score.SentencesPer100Words, s) {
		t.Errorf("per-100 inputs = %f, %f", score.LettersPer100Words, score.SentencesPer100Words)
	}
	if score.GradeLevel != 0 {
		t.Errorf("GradeLevel = %d, want 0", score.GradeLevel)
	}
}

func TestSMOG(t *testing.T) {
	score, err := SMOG(denseText)
	if err != nil {
		t.Fatalf("SMOG() error: %v", err)
	}

	if score.PolysyllableCount != 4 {
		t.Fatalf("PolysyllableCount = %d, want 4", score.PolysyllableCount)
	}
	want := 1.0430*math.Sqrt(4*30) + 3.1291
	if !near(score.Index, want) {
		t.Errorf("Index = %f, want %f", score.Index, want)
	}
	if score.Reliable {
		t.Error("one sentence should not be flagged reliable")
	}
}

func TestSMOGNoPolysyllables(t *testing.T) {
	score, err := SMOG(simpleText)
	if err != nil {
		t.Fatalf("SMOG() error: %v", err)
	}
	if score.PolysyllableCount != 0 {
		t.Errorf("PolysyllableCount = %d, want 0", score.PolysyllableCount)
	}
	if !near(score.Index, 3.1291) {
		t.Errorf("Index = %f, want 3.1291", score.Index)
	}
}

func TestGunningFog(t *testing.T) {
	score, err := GunningFog(denseText)
	if err != nil {
		t.Fatalf("GunningFog() error: %v", err)
	}

	// All four words are complex: 0.4 * (4 + 100*1).
	if score.ComplexWordCount != 4 {
		t.Fatalf("ComplexWordCount = %d, want 4", score.ComplexWordCount)
	}
	if !near(score.Index, 41.6) {
		t.Errorf("Index = %f, want 41.6", score.Index)
	}
}

func TestGunningFogSimple(t *testing.T) {
	score, err := GunningFog(simpleText)
	if err != nil {
		t.Fatalf("GunningFog() error: %v", err)
	}
	if score.ComplexWordCount != 0 {
		t.Errorf("ComplexWordCount = %d, want 0", score.ComplexWordCount)
	}
	if !near(score.Index, 1.2) {
		t.Errorf("Index = %f, want 1.2", score.Index)
	}
}

func TestStripInflection(t *testing.T) {
	tests := []struct {
		word, want string
	}{
		{"happening", "happen"},
		{"deciphered", "decipher"},
		{"complicates", "complicat"},
		{"sing", "sing"},
		{"red", "red"},
		{"goes", "goes"},
		{"cat", "cat"},
	}
	for _, tt := range tests {
		if got := stripInflection(tt.word); got != tt.want {
			t.Errorf("stripInflection(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}
