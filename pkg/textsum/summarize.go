package textsum

import (
	"fmt"
	"strings"
)

// Summarize extracts the highest scoring sentences of text.
//
// Inputs with no more than opts.MinSentences sentences come back unchanged.
// If scoring fails the leading sentences are used and Result.Fallback is
// set; that failure is never returned as an error. A *SegmentationError is
// returned alongside a Result holding the raw text, and ErrEmptyInput when
// nothing summarizable remains.
func (s *implSummarizer) Summarize(text string, opts Options) (Result, error) {
	opts = opts.normalize()
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyInput
	}

	sents, err := s.tokenizer.Sentences(text)
	if err != nil {
		return Result{Text: text, Unchanged: true}, &SegmentationError{Text: text, Err: err}
	}

	res := Result{Total: len(sents)}
	if len(sents) <= opts.MinSentences {
		res.Text = text
		res.Sentences = sents
		res.Target = len(sents)
		res.Unchanged = true
		return res, nil
	}

	preprocessed := Preprocess(text)
	if preprocessed == "" {
		return Result{}, ErrEmptyInput
	}

	res.Target = TargetCount(len(sents), opts)
	order, err := s.rank(sents, preprocessed)
	if err != nil {
		order = leading(len(sents))
		res.Fallback = true
		res.Err = err
	}

	res.Sentences = Select(sents, order, res.Target)
	res.Text = Join(res.Sentences)
	return res, nil
}

// rank runs the frequency model and scorer. A panic in either, typically
// from an injected tokenizer, is turned into a *ScoringError.
func (s *implSummarizer) rank(sents []Sentence, preprocessed string) (order []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			order = nil
			err = &ScoringError{Err: fmt.Errorf("%v", r)}
		}
	}()

	table := BuildFrequencyTable(s.tokenizer, preprocessed)
	return Rank(ScoreSentences(s.tokenizer, sents, table)), nil
}

func leading(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// Summarize runs a rule-based summarizer with the given bounds and returns
// only the summary text.
func Summarize(text string, percentage float64, minSentences, maxSentences int) (string, error) {
	res, err := New(NewRuleTokenizer()).Summarize(text, Options{
		Percentage:   percentage,
		MinSentences: minSentences,
		MaxSentences: maxSentences,
	})
	if err != nil {
		return res.Text, err
	}
	return res.Text, nil
}
