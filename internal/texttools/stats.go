package texttools

// Stats summarizes a text: token totals across the three views plus simple
// derived figures.
type Stats struct {
	Characters        int
	Words             int
	DistinctWords     int
	Sentences         int
	AverageWordLength float64
	WordsPerSentence  float64
}

// Stats computes summary statistics over the token views. Derived averages
// are zero when their denominator is empty.
func (t *Text) Stats() Stats {
	s := Stats{
		Characters: len(t.characters),
		Words:      len(t.words),
		Sentences:  len(t.sentences),
	}

	distinct := make(map[string]struct{}, len(t.words))
	runes := 0
	for _, w := range t.words {
		distinct[fold(w)] = struct{}{}
		runes += len([]rune(w))
	}
	s.DistinctWords = len(distinct)

	if s.Words > 0 {
		s.AverageWordLength = float64(runes) / float64(s.Words)
	}
	if s.Sentences > 0 {
		s.WordsPerSentence = float64(s.Words) / float64(s.Sentences)
	}

	return s
}
