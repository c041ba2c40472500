package textsum

const (
	DefaultPercentage     = 0.3
	DefaultMinSentences   = 3
	DefaultMaxSentences   = 10
	DefaultWordsPerMinute = 200

	// minContentWords is the number of content words a sentence needs
	// before it can be ranked at all.
	minContentWords = 3
)

// Sentence is a trimmed span of the document with its 0-based position.
type Sentence struct {
	Index int
	Text  string
}

// Token is a lowercased word or punctuation unit.
type Token struct {
	Text       string
	IsStopword bool
	IsPunct    bool
}

// IsContent reports whether the token counts towards the frequency model.
func (t Token) IsContent() bool {
	return !t.IsStopword && !t.IsPunct
}

// FrequencyTable maps a content word to its count divided by the highest
// count in the document. Words that never occur are absent.
type FrequencyTable map[string]float64

// SentenceScore maps a sentence index to its length-normalized score.
// Sentences with fewer than three content words have no entry.
type SentenceScore map[int]float64

// Options bound the size of a summary. Values are taken literally; start
// from DefaultOptions for the usual 30% clamped to 3..10.
type Options struct {
	Percentage   float64
	MinSentences int
	MaxSentences int
}

// DefaultOptions returns 30% of the sentences, clamped to 3..10.
func DefaultOptions() Options {
	return Options{
		Percentage:   DefaultPercentage,
		MinSentences: DefaultMinSentences,
		MaxSentences: DefaultMaxSentences,
	}
}

// normalize clamps negative bounds to zero and lifts Max up to Min.
func (o Options) normalize() Options {
	o.Percentage = max(o.Percentage, 0)
	o.MinSentences = max(o.MinSentences, 0)
	o.MaxSentences = max(o.MaxSentences, 0)
	if o.MaxSentences < o.MinSentences {
		o.MaxSentences = o.MinSentences
	}
	return o
}

// Result is the outcome of one summarization call.
type Result struct {
	// Text is the summary, or the untouched input when it was too short
	// to summarize.
	Text string

	// Sentences holds the selected sentences in document order.
	Sentences []Sentence

	// Total is the number of sentences found in the input.
	Total int

	// Target is the number of sentences the selector aimed for.
	Target int

	// Unchanged is set when the input had no more than MinSentences
	// sentences and was returned as is.
	Unchanged bool

	// Fallback is set when scoring failed and the leading sentences were
	// used instead. Err then holds the *ScoringError.
	Fallback bool
	Err      error
}
