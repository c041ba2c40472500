package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/store"
)

// Process orchestrates the inbox pipeline for one file
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting processing: %s", path)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract text
	doc, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	// Step 2: Skip documents already summarized
	hash := store.HashContent(doc.Text)
	if p.store != nil {
		prev, err := p.store.FindByHash(hash)
		switch {
		case err == nil:
			p.logger.Info(ctx, "Already summarized on %s (%s), skipping", prev.CreatedAt.Format(time.DateTime), prev.ID)
			p.archive(ctx, path)
			return nil
		case !errors.Is(err, store.ErrNotFound):
			p.logger.Warn(ctx, "History lookup failed: %v", err)
		}
	}

	// Steps 3-6: Summarize, translate, render, record
	res, err := p.digest(ctx, doc, Request{OutputDir: p.cfg.Paths.Output}, baseName(path))
	if err != nil {
		return err
	}

	// Step 7: Move original to archived folder
	p.archive(ctx, path)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Sentences: %d of %d", len(res.Summary.Sentences), res.Summary.Total)
	p.logger.Info(ctx, "Reading time: %s", res.ReadingTime)
	if res.Output.Markdown != "" {
		p.logger.Info(ctx, "Output: %s", res.Output.Markdown)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// Summarize extracts and digests a source on demand.
func (p *implProcessor) Summarize(ctx context.Context, source string, req Request) (*Result, error) {
	doc, err := p.extractor.Extract(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	return p.digest(ctx, doc, req, baseName(source))
}

// baseName derives an output file name from a path or URL.
func baseName(source string) string {
	if extractor.IsURL(source) {
		source = strings.TrimRight(source, "/")
	}
	name := filepath.Base(source)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		switch r {
		case '?', '&', '=', ':', '#', '%', '*', '"', '<', '>', '|', '\\':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." {
		return "summary"
	}
	return name
}
