package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Render writes <base>.md and <base>.docx into dir, creating dir if needed.
func (r *implRenderer) Render(ctx context.Context, report Report, dir, base string) (Output, error) {
	if report.Generated.IsZero() {
		report.Generated = time.Now()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Output{}, fmt.Errorf("create output dir: %w", err)
	}

	md := Markdown(report)
	out := Output{
		Markdown: filepath.Join(dir, base+".md"),
		Docx:     filepath.Join(dir, base+".docx"),
	}

	if err := os.WriteFile(out.Markdown, []byte(md), 0644); err != nil {
		return Output{}, fmt.Errorf("write markdown: %w", err)
	}
	if err := markdownToDocx(md, out.Docx); err != nil {
		return Output{}, fmt.Errorf("write docx: %w", err)
	}

	r.logger.Info(ctx, "Saved: %s", filepath.Base(out.Markdown))
	r.logger.Info(ctx, "Saved: %s", filepath.Base(out.Docx))
	return out, nil
}
