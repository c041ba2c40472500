package translator

import (
	"context"
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/sync/errgroup"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/chunker"
)

// SourceLanguage is the language summaries are assumed to be written in.
const SourceLanguage = "en"

// Translate returns text unchanged when the target is the source language
// or the text already reads as the target language. Otherwise the text is
// chunked, chunks are translated concurrently and joined back in order.
func (t *implTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	if target == "" || target == SourceLanguage || strings.TrimSpace(text) == "" {
		return text, nil
	}
	if err := ValidateLanguage(target); err != nil {
		return "", err
	}
	if alreadyIn(text, target) {
		t.logger.Debug(ctx, "Text already in %s, skipping translation", target)
		return text, nil
	}

	chunks := chunker.Split(text, t.maxChars)
	t.logger.Debug(ctx, "Translating %d chunk(s) to %s", len(chunks), target)

	out := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			translated, err := t.backend.TranslateChunk(gctx, chunk, target)
			if err != nil {
				return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
			}
			out[i] = strings.TrimSpace(translated)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("translate to %s: %w", target, err)
	}

	return strings.Join(out, " "), nil
}

func alreadyIn(text, target string) bool {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return false
	}
	return info.Lang.Iso6391() == baseLanguage(target)
}

func baseLanguage(code string) string {
	base, _, _ := strings.Cut(strings.ToLower(code), "-")
	return base
}

// Annotate is what callers show when translation failed: the error
// followed by the untranslated text.
func Annotate(err error, text string) string {
	return fmt.Sprintf("Translation error: %v\n\nOriginal text: %s", err, text)
}
