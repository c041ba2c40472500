package processor

import (
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/renderer"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/store"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/translator"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/pkg/textsum"
)

// Deps are the collaborators of a Processor. Translator and Store may be
// nil, which disables translation and history respectively.
type Deps struct {
	Extractor  extractor.Extractor
	Summarizer textsum.Summarizer
	Translator translator.Translator
	Renderer   renderer.Renderer
	Store      store.Store
}

type implProcessor struct {
	cfg        *config.Config
	extractor  extractor.Extractor
	summarizer textsum.Summarizer
	translator translator.Translator
	renderer   renderer.Renderer
	store      store.Store
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		extractor:  deps.Extractor,
		summarizer: deps.Summarizer,
		translator: deps.Translator,
		renderer:   deps.Renderer,
		store:      deps.Store,
		logger:     log,
	}
}
