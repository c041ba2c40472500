package textsum

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teams = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
	"golf", "hotel", "india", "juliet", "kilo", "lima",
}

func buildDocument(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("The %s team studied river ecology closely.", teams[i%len(teams)])
	}
	return strings.Join(parts, " ")
}

func TestBuildFrequencyTable(t *testing.T) {
	table := BuildFrequencyTable(NewRuleTokenizer(), "apple apple banana the")
	assert.Equal(t, FrequencyTable{"apple": 1.0, "banana": 0.5}, table)

	assert.Empty(t, BuildFrequencyTable(NewRuleTokenizer(), "the and of"))
}

func TestScoreSentences(t *testing.T) {
	table := FrequencyTable{"apple": 1.0, "banana": 0.5}
	sents := []Sentence{
		{Index: 0, Text: "Apple banana cherry."},
		{Index: 1, Text: "Apple pie."},
		{Index: 2, Text: "The apple, the banana and the apple again."},
	}

	got := ScoreSentences(NewRuleTokenizer(), sents, table)

	require.Len(t, got, 2)
	assert.InDelta(t, 0.5, got[0], 1e-9)
	assert.NotContains(t, got, 1)
	// stop-words contribute nothing and are not counted: 2.5 over 3
	assert.InDelta(t, 2.5/3, got[2], 1e-9)
}

func TestRank_TieBreakByIndex(t *testing.T) {
	got := Rank(SentenceScore{2: 0.5, 0: 0.5, 1: 0.9})
	assert.Equal(t, []int{1, 0, 2}, got)
}

func TestSelect(t *testing.T) {
	sents := []Sentence{{0, "a"}, {1, "b"}, {2, "c"}, {3, "d"}}
	got := Select(sents, []int{3, 1, 0}, 2)
	assert.Equal(t, []Sentence{{1, "b"}, {3, "d"}}, got)

	assert.Len(t, Select(sents, []int{2}, 3), 1)
}

func TestTargetCount(t *testing.T) {
	tests := []struct {
		total int
		opts  Options
		want  int
	}{
		{12, DefaultOptions(), 4},
		{5, DefaultOptions(), 3},
		{25, DefaultOptions(), 8},
		{100, DefaultOptions(), 10},
		{10, Options{Percentage: 0.5, MinSentences: 1, MaxSentences: 2}, 2},
		{20, Options{Percentage: 0, MinSentences: 3, MaxSentences: 10}, 3},
		{2, Options{Percentage: 0.3, MinSentences: 0, MaxSentences: 10}, 1},
		{10, Options{}, 0},
		{10, Options{Percentage: 0.5, MinSentences: 4, MaxSentences: 2}, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%v", tt.total, tt.opts), func(t *testing.T) {
			assert.Equal(t, tt.want, TargetCount(tt.total, tt.opts))
		})
	}
}

func TestSummarize_ShortInputUnchanged(t *testing.T) {
	text := "  First line here. Second line here.\nThird one!  "
	res, err := New(NewRuleTokenizer()).Summarize(text, DefaultOptions())

	require.NoError(t, err)
	assert.True(t, res.Unchanged)
	assert.Equal(t, text, res.Text)
	assert.Equal(t, 3, res.Total)
}

func TestSummarize_TargetCountAndOrder(t *testing.T) {
	text := buildDocument(12)
	tok := NewRuleTokenizer()

	res, err := New(tok).Summarize(text, DefaultOptions())
	require.NoError(t, err)
	require.False(t, res.Fallback)

	assert.Equal(t, 12, res.Total)
	assert.Equal(t, 4, res.Target)
	require.Len(t, res.Sentences, 4)

	again, err := tok.Sentences(res.Text)
	require.NoError(t, err)
	assert.Len(t, again, 4)

	last := -1
	for _, s := range res.Sentences {
		assert.Greater(t, s.Index, last)
		last = s.Index
		assert.Contains(t, text, s.Text)
	}
}

func TestSummarize_PicksHighestScores(t *testing.T) {
	text := "Weather today looks quite pleasant outside. " +
		"Rockets carry rockets beyond rockets orbit. " +
		"Lunch included bread, cheese and apples. " +
		"Engineers build rockets and test rockets daily. " +
		"Evening brought gentle rain across town."

	res, err := New(NewRuleTokenizer()).Summarize(text, Options{Percentage: 0.4, MinSentences: 1, MaxSentences: 5})

	require.NoError(t, err)
	assert.Equal(t, "Rockets carry rockets beyond rockets orbit. Engineers build rockets and test rockets daily.", res.Text)
}

func TestSummarize_ShortSentencesNeverSelected(t *testing.T) {
	text := "Rockets rockets. Rockets fly! Rockets soar! Rockets land! " +
		"Engineers build rockets and test rockets daily."

	res, err := New(NewRuleTokenizer()).Summarize(text, DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Target)
	assert.Equal(t, "Engineers build rockets and test rockets daily.", res.Text)
}

type panickyTokenizer struct {
	*RuleTokenizer
}

func (panickyTokenizer) Tokens(string) []Token {
	panic("tokens unavailable")
}

func TestSummarize_ScoringFallback(t *testing.T) {
	text := buildDocument(5)
	res, err := New(panickyTokenizer{NewRuleTokenizer()}).Summarize(text, DefaultOptions())

	require.NoError(t, err)
	assert.True(t, res.Fallback)

	var scoringErr *ScoringError
	require.ErrorAs(t, res.Err, &scoringErr)

	sents, _ := NewRuleTokenizer().Sentences(text)
	assert.Equal(t, Join(sents[:3]), res.Text)
}

type brokenTokenizer struct {
	*RuleTokenizer
}

func (brokenTokenizer) Sentences(string) ([]Sentence, error) {
	return nil, errors.New("model missing")
}

func TestSummarize_SegmentationFailure(t *testing.T) {
	text := buildDocument(6)
	res, err := New(brokenTokenizer{NewRuleTokenizer()}).Summarize(text, DefaultOptions())

	var segErr *SegmentationError
	require.ErrorAs(t, err, &segErr)
	assert.Equal(t, text, segErr.Text)
	assert.Equal(t, text, res.Text)
}

func TestSummarize_EmptyInput(t *testing.T) {
	s := New(NewRuleTokenizer())

	_, err := s.Summarize(" \n\t ", DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = s.Summarize("1. 2. 3. 4. 5.", DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSummarizeFunc(t *testing.T) {
	got, err := Summarize(buildDocument(12), 0.3, 3, 10)
	require.NoError(t, err)

	sents, _ := NewRuleTokenizer().Sentences(got)
	assert.Len(t, sents, 4)
}

func TestSummarizeFunc_ExplicitBounds(t *testing.T) {
	tok := NewRuleTokenizer()
	tests := []struct {
		name       string
		sentences  int
		percentage float64
		min, max   int
		want       int
	}{
		{"zero minimum summarizes short text", 2, 0.3, 0, 10, 1},
		{"zero percentage clamps to minimum", 20, 0, 3, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(buildDocument(tt.sentences), tt.percentage, tt.min, tt.max)
			require.NoError(t, err)

			sents, err := tok.Sentences(got)
			require.NoError(t, err)
			assert.Len(t, sents, tt.want)
		})
	}
}

func TestEstimateReadingTime(t *testing.T) {
	words := func(n int) string { return strings.Repeat("word ", n) }

	tests := []struct {
		name string
		text string
		wpm  int
		want string
	}{
		{"empty", "", 200, "1 min read"},
		{"400 words", words(400), 200, "2 min read"},
		{"half rounds to even", words(500), 200, "2 min read"},
		{"three and a half", words(700), 200, "4 min read"},
		{"default wpm", words(600), 0, "3 min read"},
		{"fast reader", words(400), 400, "1 min read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadingTime(tt.text, tt.wpm))
		})
	}
}
