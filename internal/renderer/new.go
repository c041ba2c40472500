package renderer

import "github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"

type implRenderer struct {
	logger logger.Logger
}

// New creates a Renderer that writes a markdown and a docx file per report.
func New(log logger.Logger) Renderer {
	return &implRenderer{logger: log}
}
