package texttools

import "errors"

var (
	// ErrEmptyInput is returned when the source text contains no tokens of
	// the requested element type.
	ErrEmptyInput = errors.New("text has no tokens of the requested type")

	// ErrUnknownElementType is returned by ParseElementType for codes
	// outside w|c|s and their full names.
	ErrUnknownElementType = errors.New("unknown element type")

	// ErrUnsatisfiablePattern is returned when no combination of source
	// fragments can reach a required per-line syllable count.
	ErrUnsatisfiablePattern = errors.New("no fragment combination reaches the syllable target")

	// ErrScoreUndefined is returned when a readability score would divide
	// by a zero word or sentence count.
	ErrScoreUndefined = errors.New("readability score undefined for empty text")
)
