package textsum

import (
	"fmt"
	"math"
	"strings"
)

// ReadingMinutes returns max(1, round(words/wpm)) where words is the number
// of whitespace-separated fields. Halves round to even. A non-positive wpm
// uses DefaultWordsPerMinute.
func ReadingMinutes(text string, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	words := len(strings.Fields(text))
	return max(1, int(math.RoundToEven(float64(words)/float64(wpm))))
}

// EstimateReadingTime formats ReadingMinutes as "N min read".
func EstimateReadingTime(text string, wpm int) string {
	return fmt.Sprintf("%d min read", ReadingMinutes(text, wpm))
}
