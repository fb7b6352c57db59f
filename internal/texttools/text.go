// Package texttools is the analysis and generation engine behind the
// writerator CLI. It tokenizes raw text into character, word, and sentence
// views, ranks elements by frequency or pattern matches, scores readability,
// and assembles randomized poem lines under exact syllable budgets.
//
// The engine performs no I/O and holds no mutable state: a Text is built
// once from raw content and every operation is a pure function of its
// token views.
package texttools

import (
	"fmt"
	"strings"
)

// ElementType selects which tokenized view of a Text an operation works on.
type ElementType int

const (
	Words ElementType = iota
	Characters
	Sentences
)

func (e ElementType) String() string {
	switch e {
	case Words:
		return "words"
	case Characters:
		return "characters"
	case Sentences:
		return "sentences"
	}
	return fmt.Sprintf("ElementType(%d)", int(e))
}

// ParseElementType maps a CLI type code to an ElementType. Both the
// single-letter codes (w|c|s) and the full names are accepted.
func ParseElementType(code string) (ElementType, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "w", "words":
		return Words, nil
	case "c", "characters":
		return Characters, nil
	case "s", "sentences":
		return Sentences, nil
	}
	return 0, fmt.Errorf("%w: %q (expected w|c|s)", ErrUnknownElementType, code)
}

// Text is an immutable wrapper over raw source content with its three
// derived token views. All views are built eagerly at construction and
// preserve order of appearance.
type Text struct {
	raw        string
	words      []string
	characters []string
	sentences  []string
}

// New builds a Text from raw content.
func New(raw string) *Text {
	return &Text{
		raw:        raw,
		words:      tokenizeWords(raw),
		characters: tokenizeCharacters(raw),
		sentences:  tokenizeSentences(raw),
	}
}

// Raw returns the original source content.
func (t *Text) Raw() string { return t.raw }

// Tokens returns the token view for the given element type, in order of
// appearance. The returned slice is shared; callers must not modify it.
func (t *Text) Tokens(et ElementType) []string {
	switch et {
	case Words:
		return t.words
	case Characters:
		return t.characters
	case Sentences:
		return t.sentences
	}
	return nil
}
