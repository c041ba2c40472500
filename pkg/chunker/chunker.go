// Package chunker splits text into sentence-aligned chunks that fit a
// character budget, for services that cap request size.
package chunker

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxChars matches the request limit of common translation APIs.
	DefaultMaxChars = 5000

	// Separator ends every sentence but the last.
	Separator = ". "
)

// Split breaks text on Separator and greedily packs sentences into chunks
// whose length, counting one separator per sentence, stays within maxChars.
// Text that already fits is returned as a single chunk.
//
// A sentence longer than maxChars is not cut; it becomes a chunk of its
// own and exceeds the budget.
//
// Joining the chunks with a single space reproduces text, except for the
// space of a trailing separator, which never forms a chunk of its own.
func Split(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return []string{text}
	}

	parts := strings.Split(text, Separator)
	sepLen := utf8.RuneCountInString(Separator)

	var (
		chunks  []string
		current []string
		size    int
	)
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
			size = 0
		}
	}

	for i, part := range parts {
		if part == "" && i == len(parts)-1 {
			break
		}
		cost := utf8.RuneCountInString(part) + sepLen
		if size+cost > maxChars {
			flush()
		}
		if i < len(parts)-1 {
			// keep the period that belonged to the separator
			part += "."
		}
		current = append(current, part)
		size += cost
	}
	flush()

	return chunks
}
