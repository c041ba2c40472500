package textsum

import (
	"math"
	"slices"
	"strings"
)

// TargetCount returns round(total*percentage) clamped to the option bounds.
func TargetCount(total int, opts Options) int {
	opts = opts.normalize()
	n := int(math.Round(float64(total) * opts.Percentage))
	return min(max(n, opts.MinSentences), opts.MaxSentences)
}

// Select takes the first target indices of order, restores document order
// and returns the matching sentences.
func Select(sents []Sentence, order []int, target int) []Sentence {
	picked := slices.Clone(order[:min(target, len(order))])
	slices.Sort(picked)

	out := make([]Sentence, 0, len(picked))
	for _, idx := range picked {
		out = append(out, sents[idx])
	}
	return out
}

// Join concatenates sentence texts with single spaces.
func Join(sents []Sentence) string {
	parts := make([]string, len(sents))
	for i, s := range sents {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}
