package translator

import "context"

// Translator translates text of any length into a target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Backend translates one request-sized piece of text.
type Backend interface {
	TranslateChunk(ctx context.Context, text, target string) (string, error)
}
