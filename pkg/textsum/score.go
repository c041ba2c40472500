package textsum

import (
	"cmp"
	"slices"
)

// ScoreSentences sums the table frequency of every token in a sentence and
// divides by its content-word count. Sentences with fewer than three
// content words are left out of the result.
func ScoreSentences(tok Tokenizer, sents []Sentence, table FrequencyTable) SentenceScore {
	scores := make(SentenceScore, len(sents))
	for _, s := range sents {
		tokens := tok.Tokens(s.Text)

		content := 0
		sum := 0.0
		for _, t := range tokens {
			if t.IsContent() {
				content++
			}
			sum += table[t.Text]
		}
		if content < minContentWords {
			continue
		}
		scores[s.Index] = sum / float64(max(1, content))
	}
	return scores
}

// Rank orders scored sentence indices by score, highest first. Equal
// scores keep document order.
func Rank(scores SentenceScore) []int {
	order := make([]int, 0, len(scores))
	for idx := range scores {
		order = append(order, idx)
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}
