package textsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTokenizer_Sentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"terminal punctuation", "Hello world. How are you?  Fine!", []string{"Hello world.", "How are you?", "Fine!"}},
		{"no boundary", "No boundary here", []string{"No boundary here"}},
		{"blank line", "Title\n\nBody text.", []string{"Title", "Body text."}},
		{"closing quote", `He said "stop." Then left.`, []string{`He said "stop."`, "Then left."}},
		{"empty", "   ", nil},
	}

	tok := NewRuleTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tok.Sentences(tt.text)
			require.NoError(t, err)

			var texts []string
			for i, s := range got {
				assert.Equal(t, i, s.Index)
				texts = append(texts, s.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestPunktTokenizer_Sentences(t *testing.T) {
	tok, err := NewPunktTokenizer()
	require.NoError(t, err)

	got, err := tok.Sentences("The cat sat on the mat. The dog ran in the park.")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "The cat sat on the mat.", got[0].Text)
	assert.Equal(t, 1, got[1].Index)
}

func TestPunktTokenizer_NotLoaded(t *testing.T) {
	var tok PunktTokenizer
	_, err := tok.Sentences("Some text.")
	assert.Error(t, err)
}

func TestTokens(t *testing.T) {
	got := NewRuleTokenizer().Tokens("Don't stop, it's FINE.")
	want := []Token{
		{Text: "don't", IsStopword: true},
		{Text: "stop"},
		{Text: ",", IsPunct: true},
		{Text: "it's", IsStopword: true},
		{Text: "fine"},
		{Text: ".", IsPunct: true},
	}
	assert.Equal(t, want, got)
}

func TestNewTokenizer(t *testing.T) {
	tok, err := NewTokenizer("rule")
	require.NoError(t, err)
	assert.IsType(t, &RuleTokenizer{}, tok)

	tok, err = NewTokenizer("")
	require.NoError(t, err)
	assert.IsType(t, &PunktTokenizer{}, tok)

	_, err = NewTokenizer("bogus")
	assert.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"urls digits punctuation", "Visit https://example.com NOW, 42 times!!  www.x.org ok", "visit now times ok"},
		{"whitespace", "  A\tB\n\nC  ", "a b c"},
		{"nothing left", "1. 2. 3.", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Preprocess(tt.in))
		})
	}
}
