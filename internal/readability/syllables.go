package readability

import "strings"

// CountSyllables estimates the syllable count of a single word by counting
// contiguous vowel groups, subtracting a trailing silent 'e', and flooring
// at one syllable for any non-empty word.
//
// The heuristic is deliberately simple: it misreads some words ("apple" is
// counted as one syllable) but is deterministic, dependency-free, and close
// enough in aggregate for the readability formulas that consume it.
func CountSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	// silent 'e' adjustment
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
