package extractor

import (
	"net/http"
	"time"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/executor"
)

// New creates an Extractor that routes URLs, PDFs and text files to the
// matching backend.
func New(cfg config.ExtractConfig, exec executor.Executor, log logger.Logger) Extractor {
	return &implRouter{
		web:    NewWeb(cfg, &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}, log),
		pdf:    NewPDF(cfg, exec, log),
		text:   NewText(cfg),
		logger: log,
	}
}

// NewWeb creates the web article extractor.
func NewWeb(cfg config.ExtractConfig, client *http.Client, log logger.Logger) Extractor {
	return &implWeb{cfg: cfg, client: client, logger: log}
}

// NewPDF creates the PDF extractor.
func NewPDF(cfg config.ExtractConfig, exec executor.Executor, log logger.Logger) Extractor {
	return &implPDF{cfg: cfg, executor: exec, logger: log}
}

// NewText creates the plain text file extractor.
func NewText(cfg config.ExtractConfig) Extractor {
	return &implText{cfg: cfg}
}
