package texttools

import (
	"fmt"
	"math/rand"
	"strings"
)

// Poem is an ordered sequence of generated lines.
type Poem []string

// maxLineAttempts bounds the random search per line before a target is
// declared unreachable.
const maxLineAttempts = 100

// Generator assembles poem lines from a source text's vocabulary under
// exact per-line syllable budgets. Candidate fragments are the distinct
// words of the source (first-seen spelling), the granularity at which exact
// syllable targets stay reachable.
type Generator struct {
	rng          *rand.Rand
	words        []candidate
	minSyllables int
}

type candidate struct {
	word      string
	syllables int
}

// NewGenerator builds a generator over the distinct words of t. The caller
// supplies the random source; fix its seed for reproducible output.
func NewGenerator(t *Text, rng *rand.Rand) *Generator {
	g := &Generator{rng: rng}

	seen := make(map[string]struct{})
	for _, w := range t.Tokens(Words) {
		key := fold(w)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		c := candidate{word: w, syllables: EstimateSyllables(w)}
		g.words = append(g.words, c)
		if g.minSyllables == 0 || c.syllables < g.minSyllables {
			g.minSyllables = c.syllables
		}
	}

	return g
}

// GeneratePoems produces n poems, each with one line per pattern entry,
// where a line's estimated syllable total equals the pattern value exactly.
// Each poem is generated independently; selection among valid words is
// uniform. Fails with ErrUnsatisfiablePattern (carrying the line index and
// target) when a target cannot be reached from the source vocabulary.
func (g *Generator) GeneratePoems(pattern []int, n int) ([]Poem, error) {
	if len(g.words) == 0 {
		return nil, fmt.Errorf("generate poems: %w", ErrEmptyInput)
	}
	if len(pattern) == 0 {
		return nil, fmt.Errorf("generate poems: empty syllable pattern")
	}
	for i, target := range pattern {
		if target < 1 {
			return nil, fmt.Errorf("generate poems: line %d: syllable target %d is not positive", i+1, target)
		}
	}

	poems := make([]Poem, 0, n)
	for p := 0; p < n; p++ {
		poem := make(Poem, 0, len(pattern))
		for i, target := range pattern {
			line, err := g.generateLine(target)
			if err != nil {
				return nil, fmt.Errorf("poem %d, line %d (%d syllables): %w", p+1, i+1, target, err)
			}
			poem = append(poem, line)
		}
		poems = append(poems, poem)
	}

	return poems, nil
}

func (g *Generator) generateLine(target int) (string, error) {
	if target < g.minSyllables {
		return "", ErrUnsatisfiablePattern
	}

	for attempt := 0; attempt < maxLineAttempts; attempt++ {
		if line, ok := g.tryLine(target); ok {
			return line, nil
		}
	}
	return "", ErrUnsatisfiablePattern
}

// tryLine samples words until the running syllable total hits target. A
// word is eligible only when placing it leaves either zero budget or at
// least the vocabulary's smallest syllable count, so every pick keeps the
// line finishable. Vocabularies with gaps in their syllable counts can
// still dead-end, hence the retry loop in generateLine.
func (g *Generator) tryLine(target int) (string, bool) {
	var picked []string
	remaining := target

	for remaining > 0 {
		var eligible []candidate
		for _, c := range g.words {
			rest := remaining - c.syllables
			if rest == 0 || rest >= g.minSyllables {
				eligible = append(eligible, c)
			}
		}
		if len(eligible) == 0 {
			return "", false
		}

		c := eligible[g.rng.Intn(len(eligible))]
		picked = append(picked, c.word)
		remaining -= c.syllables
	}

	return strings.Join(picked, " "), true
}
