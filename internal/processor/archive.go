package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// archive moves a processed input file into the archived folder. Failures
// are logged, the summary has already been written.
func (p *implProcessor) archive(ctx context.Context, path string) {
	if p.cfg.Paths.Archived == "" {
		return
	}
	dest, err := p.moveToArchived(path)
	if err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
		return
	}
	p.logger.Info(ctx, "Archived: %s -> %s", path, dest)
}

// moveToArchived renames path into the archived folder, adding a timestamp
// when a file of the same name is already there.
func (p *implProcessor) moveToArchived(path string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return "", fmt.Errorf("create archived dir: %w", err)
	}

	filename := filepath.Base(path)
	dest := filepath.Join(p.cfg.Paths.Archived, filename)
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(filename)
		stamped := fmt.Sprintf("%s_%s%s", strings.TrimSuffix(filename, ext), time.Now().Format("20060102-150405"), ext)
		dest = filepath.Join(p.cfg.Paths.Archived, stamped)
	}

	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("move to archived: %w", err)
	}
	return dest, nil
}
