package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const translatePrompt = `Translate the text below into %s.
Return only the translation, keep sentence order and paragraph breaks, and do not add commentary.

Text:
---
%s
---`

// generateFunc runs one prompt with one API key.
type generateFunc func(ctx context.Context, apiKey, model, prompt string) (string, error)

// errClient marks a failure to build a client for a key; the next key is tried.
var errClient = errors.New("create client")

// TranslateChunk sends one chunk to Gemini. Rotates API keys on 429 / quota errors.
// Every call tries each key at most once, starting from the shared current key.
func (g *implGemini) TranslateChunk(ctx context.Context, text, target string) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", errors.New("no Gemini API keys configured")
	}
	prompt := fmt.Sprintf(translatePrompt, LanguageName(target), text)

	start := g.current()
	var lastErr error

	for i := range len(g.apiKeys) {
		idx := (start + i) % len(g.apiKeys)

		out, err := g.generate(ctx, g.apiKeys[idx], g.model, prompt)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, errClient) && !isQuotaError(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}

		g.logger.Warn(ctx, "Gemini key %d/%d unusable, rotating: %v", idx+1, len(g.apiKeys), err)
		g.advanceFrom(idx)
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func generateContent(ctx context.Context, apiKey, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errClient, err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var b strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			b.WriteString(part.Text)
		}
		if b.Len() > 0 {
			return b.String(), nil
		}
	}
	return "", errors.New("empty response from Gemini")
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (g *implGemini) current() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey
}

// advanceFrom moves the shared key past failed, unless another call already has.
func (g *implGemini) advanceFrom(failed int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == failed {
		g.currentKey = (failed + 1) % len(g.apiKeys)
	}
}
