package extractor

import (
	"context"
	"errors"
)

const (
	SourceURL  = "url"
	SourcePDF  = "pdf"
	SourceText = "text"
)

var (
	ErrInvalidURL  = errors.New("invalid URL format")
	ErrUnsupported = errors.New("unsupported source")
	ErrNoContent   = errors.New("could not extract meaningful content")
)

// Document is the raw text of one source plus what was learned about it.
type Document struct {
	SourceType string
	SourceName string
	Text       string
	Pages      int
	Images     []string
}

// Extractor turns a URL or file path into a Document.
type Extractor interface {
	Extract(ctx context.Context, source string) (*Document, error)
}
