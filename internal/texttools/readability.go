package texttools

import "fmt"

// complexWordThreshold is the estimated syllable count at which a word
// counts as complex for readability scoring.
const complexWordThreshold = 3

// GunningFog computes the Gunning-Fog readability index:
//
//	0.4 * (words/sentences + 100 * complexWords/words)
//
// where a complex word has three or more estimated syllables. No exception
// list is applied for proper nouns, familiar jargon, or compounds; the
// syllable threshold is the whole policy, which keeps the score a pure
// function of the token views.
//
// Returns ErrScoreUndefined when the text has no words or no sentences.
func (t *Text) GunningFog() (float64, error) {
	words := len(t.words)
	sentences := len(t.sentences)
	if words == 0 || sentences == 0 {
		return 0, fmt.Errorf("gunning-fog needs at least one word and one sentence: %w", ErrScoreUndefined)
	}

	complexWords := 0
	for _, w := range t.words {
		if EstimateSyllables(w) >= complexWordThreshold {
			complexWords++
		}
	}

	wordsPerSentence := float64(words) / float64(sentences)
	pctComplex := 100 * float64(complexWords) / float64(words)

	return 0.4 * (wordsPerSentence + pctComplex), nil
}
