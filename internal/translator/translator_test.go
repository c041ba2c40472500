package translator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
)

type upperBackend struct {
	mu     sync.Mutex
	chunks []string
	fail   string
}

func (b *upperBackend) TranslateChunk(_ context.Context, text, _ string) (string, error) {
	b.mu.Lock()
	b.chunks = append(b.chunks, text)
	b.mu.Unlock()
	if b.fail != "" && strings.Contains(text, b.fail) {
		return "", errors.New("backend down")
	}
	return " " + strings.ToUpper(text) + "\n", nil
}

func newTestTranslator(backend Backend, maxChars int) Translator {
	return New(config.TranslateConfig{MaxChars: maxChars, Concurrency: 3}, backend, logger.NewNop())
}

func TestTranslate_Skips(t *testing.T) {
	french := "Le gouvernement a annoncé hier une nouvelle série de mesures pour soutenir les agriculteurs touchés par la sécheresse. " +
		"Les syndicats agricoles ont salué cette décision mais demandent des aides plus rapides et plus importantes pour les exploitations familiales."

	tests := []struct {
		name   string
		text   string
		target string
	}{
		{"english target", "Hello there.", "en"},
		{"no target", "Hello there.", ""},
		{"empty text", "   ", "fr"},
		{"already french", french, "fr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &upperBackend{}
			got, err := newTestTranslator(backend, 100).Translate(context.Background(), tt.text, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)
			assert.Empty(t, backend.chunks)
		})
	}
}

func TestTranslate_ChunksInOrder(t *testing.T) {
	text := "The first sentence is here. The second sentence follows it. The third one ends the text."
	backend := &upperBackend{}

	got, err := newTestTranslator(backend, 30).Translate(context.Background(), text, "de")
	require.NoError(t, err)

	assert.Len(t, backend.chunks, 3)
	assert.Equal(t, strings.ToUpper(text), got)
}

func TestTranslate_SingleChunk(t *testing.T) {
	backend := &upperBackend{}
	got, err := newTestTranslator(backend, 0).Translate(context.Background(), "Short text. Still short.", "es")
	require.NoError(t, err)
	assert.Equal(t, []string{"Short text. Still short."}, backend.chunks)
	assert.Equal(t, "SHORT TEXT. STILL SHORT.", got)
}

func TestTranslate_Errors(t *testing.T) {
	backend := &upperBackend{fail: "second"}
	_, err := newTestTranslator(backend, 30).Translate(context.Background(),
		"The first sentence is here. The second sentence follows it. The third one ends the text.", "de")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")

	_, err = newTestTranslator(&upperBackend{}, 30).Translate(context.Background(), "Some text.", "not a tag!")
	require.Error(t, err)
}

func TestAnnotate(t *testing.T) {
	got := Annotate(errors.New("quota"), "Hello.")
	assert.Equal(t, "Translation error: quota\n\nOriginal text: Hello.", got)
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"fr", "French"},
		{"zh-CN", "Chinese (Simplified)"},
		{"ja", "Japanese"},
		{"nl", "Dutch"},
		{"not a tag!", "not a tag!"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageName(tt.code))
		})
	}
}

func TestLanguages(t *testing.T) {
	codes := Languages()
	assert.Len(t, codes, 10)
	assert.Equal(t, "ar", codes[0])
	assert.Contains(t, codes, "zh-CN")
}

func TestGemini_NoKeys(t *testing.T) {
	_, err := NewGemini(nil, "gemini-2.5-flash", logger.NewNop()).TranslateChunk(context.Background(), "Hi.", "fr")
	require.Error(t, err)
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, isQuotaError(errors.New("Error 429: too many requests")))
	assert.True(t, isQuotaError(errors.New("RESOURCE_EXHAUSTED")))
	assert.False(t, isQuotaError(errors.New("permission denied")))
}

func newTestGemini(keys []string, generate generateFunc) *implGemini {
	g := NewGemini(keys, "gemini-test", logger.NewNop()).(*implGemini)
	g.generate = generate
	return g
}

func TestGemini_RotatesPastLimitedKeys(t *testing.T) {
	var mu sync.Mutex
	var tried []string
	g := newTestGemini([]string{"k1", "k2", "k3"}, func(_ context.Context, key, _, prompt string) (string, error) {
		mu.Lock()
		tried = append(tried, key)
		mu.Unlock()
		if key != "k3" {
			return "", errors.New("Error 429: RESOURCE_EXHAUSTED")
		}
		return "ok", nil
	})

	got, err := g.TranslateChunk(context.Background(), "Hello.", "fr")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, []string{"k1", "k2", "k3"}, tried)
	assert.Equal(t, 2, g.current())

	// the next call starts from the working key
	tried = nil
	_, err = g.TranslateChunk(context.Background(), "Hello.", "fr")
	require.NoError(t, err)
	assert.Equal(t, []string{"k3"}, tried)
}

func TestGemini_ConcurrentCallsTryEveryKey(t *testing.T) {
	keys := []string{"k1", "k2", "k3", "k4"}
	g := newTestGemini(keys, func(_ context.Context, key, _, _ string) (string, error) {
		if key != "k4" {
			return "", errors.New("quota exceeded")
		}
		return "ok", nil
	})

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = g.TranslateChunk(context.Background(), "Hello.", "de")
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "call %d", i)
	}
	assert.Equal(t, 3, g.current())
}

func TestGemini_Errors(t *testing.T) {
	calls := 0
	g := newTestGemini([]string{"k1", "k2"}, func(context.Context, string, string, string) (string, error) {
		calls++
		return "", errors.New("permission denied")
	})
	_, err := g.TranslateChunk(context.Background(), "Hello.", "fr")
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	g = newTestGemini([]string{"k1", "k2"}, func(context.Context, string, string, string) (string, error) {
		return "", errors.New("429")
	})
	_, err = g.TranslateChunk(context.Background(), "Hello.", "fr")
	require.ErrorContains(t, err, "all API keys exhausted")
}
