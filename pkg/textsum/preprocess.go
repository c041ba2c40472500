package textsum

import (
	"regexp"
	"strings"
)

var (
	reURL        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	reNonWord    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	reDigits     = regexp.MustCompile(`\p{Nd}+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Preprocess lowercases text and strips URLs, punctuation and digits,
// collapsing whitespace. The result only feeds the frequency model.
func Preprocess(text string) string {
	text = lower(text)
	text = reURL.ReplaceAllString(text, "")
	text = reNonWord.ReplaceAllString(text, "")
	text = reDigits.ReplaceAllString(text, "")
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
