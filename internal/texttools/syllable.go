package texttools

import (
	"strings"
	"unicode/utf8"
)

const vowels = "aeiouy"

// EstimateSyllables estimates the syllable count of a word by counting
// maximal vowel runs (a, e, i, o, u, y). Two fixed adjustments: a trailing
// silent "e" does not count ("love" is one syllable), except that a
// consonant+"le" ending keeps its syllable ("table", "little"); words with
// no detected nuclei clamp to 1.
//
// Best-effort, not phonetically exact. Deterministic: the same word always
// yields the same count, which the poem generator relies on for exact
// syllable targeting.
func EstimateSyllables(word string) int {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if count > 1 && strings.HasSuffix(w, "e") && !endsConsonantLE(w) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// endsConsonantLE reports whether the word ends in a consonant followed by
// "le", the ending whose "e" is not silent. The rune before "le" is decoded
// properly so multibyte characters are not judged by a stray UTF-8 byte.
func endsConsonantLE(w string) bool {
	if len(w) < 3 || !strings.HasSuffix(w, "le") {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(w[:len(w)-2])
	if r == utf8.RuneError {
		return false
	}
	return !strings.ContainsRune(vowels, r)
}
