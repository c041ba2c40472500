package translator

import (
	"sync"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
)

type implTranslator struct {
	backend     Backend
	maxChars    int
	concurrency int
	logger      logger.Logger
}

// New creates a Translator that splits text into chunks of at most
// cfg.MaxChars characters and sends them to backend.
func New(cfg config.TranslateConfig, backend Backend, log logger.Logger) Translator {
	return &implTranslator{
		backend:     backend,
		maxChars:    cfg.MaxChars,
		concurrency: max(cfg.Concurrency, 1),
		logger:      log,
	}
}

type implGemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	generate   generateFunc
}

// NewGemini creates a Backend that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) Backend {
	return &implGemini{
		apiKeys:  apiKeys,
		model:    model,
		logger:   log,
		generate: generateContent,
	}
}
