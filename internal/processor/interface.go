package processor

import (
	"context"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/renderer"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/store"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/textsum"
)

// Processor turns sources into summaries.
type Processor interface {
	// Process runs the inbox pipeline for one file and archives it.
	Process(ctx context.Context, path string) error
	// Summarize digests a URL or file path without touching the source.
	Summarize(ctx context.Context, source string, req Request) (*Result, error)
}

// Request overrides the configured defaults for one Summarize call.
// Zero values keep the configured value.
type Request struct {
	Options        textsum.Options
	Language       string
	WordsPerMinute int
	// OutputDir receives the rendered report. Empty skips rendering.
	OutputDir string
}

// Result is everything produced for one source.
type Result struct {
	Document    *extractor.Document
	Preview     string
	Summary     textsum.Result
	ReadingTime string

	Language              string
	Translation           string
	TranslatedReadingTime string
	// TranslationErr is set when Translation holds the annotated original.
	TranslationErr error

	Output renderer.Output
	Record store.Record
}
