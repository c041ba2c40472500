package textsum

type implSummarizer struct {
	tokenizer Tokenizer
}

// New creates a Summarizer that segments and tokenizes with tok.
func New(tok Tokenizer) Summarizer {
	return &implSummarizer{tokenizer: tok}
}
