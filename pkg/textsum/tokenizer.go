package textsum

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	reToken    = regexp.MustCompile(`[\p{L}\p{N}_]+(?:['’][\p{L}\p{N}_]+)*|[^\p{L}\p{N}_\s]`)
	reBoundary = regexp.MustCompile(`[.!?]+["'’”)\]]*\s+|\n\s*\n`)
)

// lexicon classifies tokens against a stop-word list. It holds no mutable
// state and is shared by the tokenizer implementations.
type lexicon struct {
	stopwords map[string]struct{}
}

func newLexicon() lexicon {
	return lexicon{stopwords: stopwordSet(englishStopwords)}
}

func (l lexicon) Tokens(text string) []Token {
	words := reToken.FindAllString(lower(text), -1)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		_, stop := l.stopwords[w]
		tokens = append(tokens, Token{
			Text:       w,
			IsStopword: stop,
			IsPunct:    isPunct(w),
		})
	}
	return tokens
}

func isPunct(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return false
		}
	}
	return true
}

// lower folds text to lower case. A Caser keeps state, so one is built per call.
func lower(text string) string {
	return cases.Lower(language.English).String(text)
}

// RuleTokenizer segments sentences on terminal punctuation followed by
// whitespace, and on blank lines. It needs no model.
type RuleTokenizer struct {
	lexicon
}

// NewRuleTokenizer returns a RuleTokenizer with the English stop-word list.
func NewRuleTokenizer() *RuleTokenizer {
	return &RuleTokenizer{lexicon: newLexicon()}
}

func (t *RuleTokenizer) Sentences(text string) ([]Sentence, error) {
	var out []Sentence
	start := 0
	for _, m := range reBoundary.FindAllStringIndex(text, -1) {
		out = appendSentence(out, text[start:m[1]])
		start = m[1]
	}
	out = appendSentence(out, text[start:])
	return out, nil
}

// PunktTokenizer segments sentences with the pre-trained English Punkt
// model, which handles abbreviations, initials and decimal numbers.
type PunktTokenizer struct {
	lexicon
	model *sentences.DefaultSentenceTokenizer
}

// NewPunktTokenizer loads the English Punkt model.
func NewPunktTokenizer() (*PunktTokenizer, error) {
	model, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &PunktTokenizer{lexicon: newLexicon(), model: model}, nil
}

func (t *PunktTokenizer) Sentences(text string) ([]Sentence, error) {
	if t == nil || t.model == nil {
		return nil, errors.New("punkt model not loaded")
	}
	var out []Sentence
	for _, s := range t.model.Tokenize(text) {
		// Punkt keeps paragraph breaks inside a sentence; split on them too.
		for _, part := range reParagraph.Split(s.Text, -1) {
			out = appendSentence(out, part)
		}
	}
	return out, nil
}

var reParagraph = regexp.MustCompile(`\n\s*\n`)

// NewTokenizer returns the tokenizer registered under name: "punkt" or
// "rule". An empty name selects punkt.
func NewTokenizer(name string) (Tokenizer, error) {
	switch strings.ToLower(name) {
	case "", "punkt":
		return NewPunktTokenizer()
	case "rule":
		return NewRuleTokenizer(), nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", name)
	}
}

func appendSentence(out []Sentence, text string) []Sentence {
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}
	return append(out, Sentence{Index: len(out), Text: text})
}
