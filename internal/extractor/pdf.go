package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/executor"
)

type implPDF struct {
	cfg      config.ExtractConfig
	executor executor.Executor
	logger   logger.Logger
}

// Extract reads the text of every page. When the pure-Go reader fails or
// finds no text, pdftotext is tried on the first MaxPDFPages pages.
func (p *implPDF) Extract(ctx context.Context, path string) (*Document, error) {
	name := filepath.Base(path)
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%w: only PDF files are allowed", ErrUnsupported)
	}

	text, pages, err := p.readPages(path)
	if err != nil {
		var limitErr *pageLimitError
		if errors.As(err, &limitErr) {
			return nil, limitErr
		}
		p.logger.Warn(ctx, "PDF reader failed on %s: %v", name, err)
	}

	if strings.TrimSpace(text) == "" {
		fallback, ferr := p.pdftotext(ctx, path)
		if ferr != nil {
			if err != nil {
				return nil, fmt.Errorf("extract PDF %s: %w", name, err)
			}
			return nil, fmt.Errorf("extract PDF %s: %w", name, ferr)
		}
		text = fallback
	}

	if len(strings.TrimSpace(text)) < p.cfg.MinContentChars {
		return nil, fmt.Errorf("%w from the PDF", ErrNoContent)
	}

	p.logger.Debug(ctx, "Extracted %d pages from PDF: %s", pages, name)
	return &Document{
		SourceType: SourcePDF,
		SourceName: name,
		Text:       text,
		Pages:      pages,
	}, nil
}

type pageLimitError struct {
	limit int
}

func (e *pageLimitError) Error() string {
	return fmt.Sprintf("PDF exceeds the %d-page limit", e.limit)
}

func (p *implPDF) readPages(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > p.cfg.MaxPDFPages {
		return "", pages, &pageLimitError{limit: p.cfg.MaxPDFPages}
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return b.String(), pages, fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(text)
	}
	return b.String(), pages, nil
}

func (p *implPDF) pdftotext(ctx context.Context, path string) (string, error) {
	if p.executor == nil || !p.executor.Available(p.cfg.PdftotextPath) {
		return "", fmt.Errorf("%s not available", p.cfg.PdftotextPath)
	}
	// run next to the file so odd characters in parent dirs never reach argv
	return p.executor.ExecuteInDir(ctx, filepath.Dir(path), p.cfg.PdftotextPath,
		"-enc", "UTF-8",
		"-l", strconv.Itoa(p.cfg.MaxPDFPages),
		filepath.Base(path), "-",
	)
}
