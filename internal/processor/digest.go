package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/renderer"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/store"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/translator"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/textsum"
)

const previewChars = 1000

// digest runs summarize, reading time, translate, render and record for doc.
func (p *implProcessor) digest(ctx context.Context, doc *extractor.Document, req Request, base string) (*Result, error) {
	req = p.withDefaults(req)
	res := &Result{
		Document: doc,
		Preview:  preview(doc.Text),
		Language: req.Language,
	}

	summary, err := p.summarizer.Summarize(doc.Text, req.Options)
	var segErr *textsum.SegmentationError
	switch {
	case errors.As(err, &segErr):
		p.logger.Warn(ctx, "Sentence segmentation failed, keeping full text: %v", segErr.Err)
	case err != nil:
		return nil, fmt.Errorf("summarize: %w", err)
	}
	if summary.Fallback {
		p.logger.Warn(ctx, "Scoring failed, using leading sentences: %v", summary.Err)
	}
	res.Summary = summary
	res.ReadingTime = textsum.EstimateReadingTime(summary.Text, req.WordsPerMinute)
	p.logger.Info(ctx, "Summary: %d of %d sentences, %s", len(summary.Sentences), summary.Total, res.ReadingTime)

	res.Translation, res.TranslatedReadingTime = summary.Text, res.ReadingTime
	if req.Language != translator.SourceLanguage {
		p.translate(ctx, res, req)
	}

	if req.OutputDir != "" && p.renderer != nil {
		out, err := p.renderer.Render(ctx, renderer.Report{
			SourceType:         doc.SourceType,
			SourceName:         doc.SourceName,
			ReadingTime:        res.ReadingTime,
			Summary:            summary.Text,
			Language:           res.Language,
			Translation:        res.Translation,
			TranslatedReadTime: res.TranslatedReadingTime,
			Images:             doc.Images,
		}, req.OutputDir, base)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		res.Output = out
	}

	if p.store != nil {
		rec, err := p.store.Save(store.Record{
			SourceType:  doc.SourceType,
			SourceName:  doc.SourceName,
			ContentHash: store.HashContent(doc.Text),
			Summary:     summary.Text,
			ReadingTime: res.ReadingTime,
			Language:    res.Language,
			Fallback:    summary.Fallback,
		})
		if err != nil {
			p.logger.Warn(ctx, "Failed to record summary: %v", err)
		}
		res.Record = rec
	}

	return res, nil
}

// translate fills the translated fields of res. A failed translation is
// reported in place of the translation, not returned.
func (p *implProcessor) translate(ctx context.Context, res *Result, req Request) {
	if p.translator == nil {
		p.logger.Warn(ctx, "No translator configured, keeping %s summary", translator.SourceLanguage)
		res.Language = translator.SourceLanguage
		return
	}

	p.logger.Info(ctx, "Translating summary to %s", translator.LanguageName(req.Language))
	translated, err := p.translator.Translate(ctx, res.Summary.Text, req.Language)
	if err != nil {
		p.logger.Error(ctx, "Translation failed: %v", err)
		res.TranslationErr = err
		res.Translation = translator.Annotate(err, res.Summary.Text)
		res.TranslatedReadingTime = res.ReadingTime
		return
	}
	res.Translation = translated
	res.TranslatedReadingTime = textsum.EstimateReadingTime(translated, req.WordsPerMinute)
}

func (p *implProcessor) withDefaults(req Request) Request {
	if req.Options.Percentage == 0 {
		req.Options.Percentage = p.cfg.Summary.Percentage
	}
	if req.Options.MinSentences == 0 {
		req.Options.MinSentences = p.cfg.Summary.MinSentences
	}
	if req.Options.MaxSentences == 0 {
		req.Options.MaxSentences = p.cfg.Summary.MaxSentences
	}
	if req.WordsPerMinute == 0 {
		req.WordsPerMinute = p.cfg.Reading.WordsPerMinute
	}
	if req.Language == "" {
		req.Language = p.cfg.Translate.TargetLanguage
	}
	if req.Language == "" {
		req.Language = translator.SourceLanguage
	}
	return req
}

// preview returns the first previewChars characters of text, marking a cut with "...".
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars]) + "..."
}
