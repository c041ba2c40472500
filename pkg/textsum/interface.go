// Package textsum implements frequency-based extractive summarization and
// reading-time estimation over plain text.
//
// The pipeline is: segment the document into sentences, build a normalized
// content-word frequency table from a preprocessed copy of the document,
// score every sentence by its mean content-word frequency, keep the best
// sentences and emit them in their original order.
package textsum

// Tokenizer splits text into sentences and word tokens.
// Implementations must be safe for concurrent use.
type Tokenizer interface {
	// Sentences returns the trimmed sentences of text in document order.
	// A text without any sentence boundary is returned as one sentence.
	Sentences(text string) ([]Sentence, error)

	// Tokens returns the word and punctuation tokens of text, lowercased
	// and classified.
	Tokens(text string) []Token
}

// Summarizer produces extractive summaries.
type Summarizer interface {
	Summarize(text string, opts Options) (Result, error)
}
