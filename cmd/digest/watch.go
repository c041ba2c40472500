package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/extractor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/processor"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize files dropped into the inbox folder until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cfg, nil)
		defer log.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		log.Info(ctx, "========================================")
		log.Info(ctx, "Document Digest Pipeline")
		log.Info(ctx, "========================================")
		log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
		log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

		// Verify required directories exist
		if err := ensureDirectories(cfg); err != nil {
			return err
		}

		deps, closeDeps, err := buildDeps(ctx, cfg, log, true)
		if err != nil {
			return err
		}
		defer closeDeps()
		proc := processor.New(cfg, deps, log)

		w, err := watcher.New(cfg.Paths.Input, proc.Process, log, watcher.Options{
			MaxConcurrent: cfg.Performance.MaxConcurrent,
			Settle:        time.Duration(cfg.Performance.SettleMillis) * time.Millisecond,
			Filter:        extractor.Supported,
		})
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		// Setup graceful shutdown
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		errChan := make(chan error, 1)
		go func() { errChan <- w.Start(ctx) }()

		log.Info(ctx, "========================================")
		log.Info(ctx, "Pipeline is ready!")
		log.Info(ctx, "Monitoring: %s (.pdf, .txt, .md, .url)", cfg.Paths.Input)
		log.Info(ctx, "Output: %s", cfg.Paths.Output)
		log.Info(ctx, "Target language: %s", cfg.Translate.TargetLanguage)
		log.Info(ctx, "Press Ctrl+C to stop")
		log.Info(ctx, "========================================")

		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received")
		case err := <-errChan:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watcher: %w", err)
			}
			return nil
		}

		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		if err := <-errChan; err != nil && !errors.Is(err, context.Canceled) {
			log.Warn(ctx, "Watcher stopped with error: %v", err)
		}

		log.Info(ctx, "Pipeline stopped")
		return nil
	},
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
