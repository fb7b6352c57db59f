package texttools

import (
	"math"
	"testing"
)

func TestStats(t *testing.T) {
	s := New(sampleText).Stats()

	if s.Characters != 24 {
		t.Errorf("Characters = %d, want 24", s.Characters)
	}
	if s.Words != 7 {
		t.Errorf("Words = %d, want 7", s.Words)
	}
	if s.DistinctWords != 5 {
		t.Errorf("DistinctWords = %d, want 5", s.DistinctWords)
	}
	if s.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", s.Sentences)
	}
	if want := 22.0 / 7.0; math.Abs(s.AverageWordLength-want) > 1e-9 {
		t.Errorf("AverageWordLength = %v, want %v", s.AverageWordLength, want)
	}
	if want := 3.5; math.Abs(s.WordsPerSentence-want) > 1e-9 {
		t.Errorf("WordsPerSentence = %v, want %v", s.WordsPerSentence, want)
	}
}

func TestStats_EmptyTextIsAllZero(t *testing.T) {
	s := New("").Stats()

	if s != (Stats{}) {
		t.Errorf("Stats on empty text = %+v, want zero value", s)
	}
}
