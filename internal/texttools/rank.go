package texttools

import (
	"fmt"
	"sort"
	"strings"
)

// RankedElement pairs a distinct element value with a count.
type RankedElement struct {
	Value string
	Count int
}

// countingKey returns the identity a token is counted under: words and
// characters fold case, sentences compare verbatim after tokenization.
func countingKey(token string, et ElementType) string {
	if et == Sentences {
		return token
	}
	return fold(token)
}

// RankByTotalCount counts every distinct element of the given type and
// returns the ranking sorted by count descending. Ties keep first-appearance
// order from the source text.
func (t *Text) RankByTotalCount(et ElementType) ([]RankedElement, error) {
	tokens := t.Tokens(et)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("rank %s by total count: %w", et, ErrEmptyInput)
	}

	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		key := countingKey(tok, et)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	ranked := make([]RankedElement, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, RankedElement{Value: key, Count: counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked, nil
}

// RankByMatchCount ranks elements by the total number of substring hits the
// given patterns score across all occurrences of the element. Patterns are
// OR-combined per occurrence but each pattern's hits are summed: an element
// containing pattern A once and pattern B twice scores three. Zero-scoring
// elements stay in the result; output formatting decides whether to show
// them. Ordering follows the same rule as RankByTotalCount.
func (t *Text) RankByMatchCount(patterns []string, et ElementType) ([]RankedElement, error) {
	tokens := t.Tokens(et)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("rank %s by match count: %w", et, ErrEmptyInput)
	}

	// Patterns are matched under the same case policy as counting.
	keyed := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		keyed = append(keyed, countingKey(p, et))
	}

	scores := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		key := countingKey(tok, et)
		if _, seen := scores[key]; !seen {
			order = append(order, key)
		}
		for _, p := range keyed {
			scores[key] += strings.Count(key, p)
		}
	}

	ranked := make([]RankedElement, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, RankedElement{Value: key, Count: scores[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked, nil
}

// CountOccurrences reports how many tokens of the given type equal value
// exactly, under the same case policy as ranking. An absent value counts
// zero; an empty text counts zero.
func (t *Text) CountOccurrences(value string, et ElementType) int {
	key := countingKey(value, et)

	n := 0
	for _, tok := range t.Tokens(et) {
		if countingKey(tok, et) == key {
			n++
		}
	}
	return n
}
