package renderer

import (
	"context"
	"time"
)

// Report is everything written to a summary file.
type Report struct {
	SourceType  string
	SourceName  string
	Generated   time.Time
	ReadingTime string
	Summary     string

	// Language is empty when the summary was not translated.
	Language           string
	Translation        string
	TranslatedReadTime string
	Images             []string
}

// Output lists the files produced for one report.
type Output struct {
	Markdown string
	Docx     string
}

// Renderer writes a report under a directory, named after base.
type Renderer interface {
	Render(ctx context.Context, report Report, dir, base string) (Output, error)
}
