package texttools

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// wordPattern matches maximal runs of letters and digits, allowing
// embedded apostrophes (don't, o'clock) without capturing surrounding
// punctuation.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’][\p{L}\p{N}]+)*`)

// fold normalizes a token for counting and matching. Unicode case folding
// rather than plain lowering, so comparisons hold beyond ASCII.
func fold(s string) string {
	return cases.Fold().String(s)
}

// tokenizeWords extracts word tokens with their original case preserved.
// Counting and matching fold case separately, so "The" and "the" count as
// one value while generation can still emit the text's own spelling.
func tokenizeWords(s string) []string {
	return wordPattern.FindAllString(s, -1)
}

// tokenizeCharacters returns every non-whitespace rune, case-folded.
// Whitespace is filtered so character counts stay comparable with the
// word and sentence views, which never produce whitespace-only tokens.
func tokenizeCharacters(s string) []string {
	caser := cases.Fold()

	var chars []string
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		chars = append(chars, caser.String(string(r)))
	}
	return chars
}

// tokenizeSentences splits text on sentence-terminal punctuation (., !, ?).
// The terminator is stripped, surrounding whitespace trimmed, and empty
// fragments dropped. Trailing text after the last terminator counts as a
// sentence of its own.
func tokenizeSentences(s string) []string {
	var sentences []string
	start := 0

	for i, r := range s {
		if r == '.' || r == '!' || r == '?' {
			if frag := strings.TrimSpace(s[start:i]); frag != "" {
				sentences = append(sentences, frag)
			}
			start = i + 1
		}
	}

	if frag := strings.TrimSpace(s[start:]); frag != "" {
		sentences = append(sentences, frag)
	}

	return sentences
}
