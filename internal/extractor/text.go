package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
)

type implText struct {
	cfg config.ExtractConfig
}

func (t *implText) Extract(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}

	text := string(data)
	if len(strings.TrimSpace(text)) < t.cfg.MinContentChars {
		return nil, fmt.Errorf("%w from %s", ErrNoContent, filepath.Base(path))
	}

	return &Document{
		SourceType: SourceText,
		SourceName: filepath.Base(path),
		Text:       text,
	}, nil
}
