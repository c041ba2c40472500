package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
)

type implRouter struct {
	web    Extractor
	pdf    Extractor
	text   Extractor
	logger logger.Logger
}

// Extract picks a backend from the shape of source: http(s) URLs go to the
// web extractor, .url files hold a URL, .pdf and .txt/.md files are read.
func (r *implRouter) Extract(ctx context.Context, source string) (*Document, error) {
	if IsURL(source) {
		r.logger.Debug(ctx, "Extracting content from URL: %s", source)
		return r.web.Extract(ctx, source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".pdf":
		r.logger.Debug(ctx, "Extracting content from PDF: %s", source)
		return r.pdf.Extract(ctx, source)
	case ".txt", ".md":
		return r.text.Extract(ctx, source)
	case ".url":
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read url file: %w", err)
		}
		target := strings.TrimSpace(string(data))
		r.logger.Debug(ctx, "Extracting content from URL in %s: %s", filepath.Base(source), target)
		return r.web.Extract(ctx, target)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(source))
	}
}

// IsURL reports whether source starts with an http or https scheme.
func IsURL(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Supported reports whether the router can handle a file with this name.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt", ".md", ".url":
		return true
	}
	return false
}
