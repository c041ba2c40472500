package main

import (
	"context"
	"fmt"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/processor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/renderer"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/store"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/translator"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/executor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/textsum"
)

// buildDeps wires the pipeline collaborators. The returned func closes the
// history store.
func buildDeps(ctx context.Context, cfg *config.Config, log logger.Logger, withHistory bool) (processor.Deps, func(), error) {
	tok, err := textsum.NewTokenizer(cfg.Summary.Tokenizer)
	if err != nil {
		return processor.Deps{}, nil, fmt.Errorf("tokenizer: %w", err)
	}

	exec := executor.New()
	if !exec.Available(cfg.Extract.PdftotextPath) {
		log.Debug(ctx, "%s not found, scanned PDFs cannot be read", cfg.Extract.PdftotextPath)
	}

	deps := processor.Deps{
		Extractor:  extractor.New(cfg.Extract, exec, log),
		Summarizer: textsum.New(tok),
		Renderer:   renderer.New(log),
	}

	if len(cfg.Translate.APIKeys) > 0 {
		backend := translator.NewGemini(cfg.Translate.APIKeys, cfg.Translate.Model, log)
		deps.Translator = translator.New(cfg.Translate, backend, log)
		log.Debug(ctx, "Translation enabled with %d API key(s)", len(cfg.Translate.APIKeys))
	} else {
		log.Debug(ctx, "GEMINI_API_KEYS not set, translation disabled")
	}

	closeFn := func() {}
	if withHistory {
		st := store.New()
		if err := st.Initialize(cfg.Store.SQLitePath); err != nil {
			return processor.Deps{}, nil, fmt.Errorf("open history: %w", err)
		}
		deps.Store = st
		closeFn = func() {
			if err := st.Close(); err != nil {
				log.Warn(ctx, "Failed to close history: %v", err)
			}
		}
	}

	return deps, closeFn, nil
}
