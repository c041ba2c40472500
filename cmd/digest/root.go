package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
)

var (
	configPath string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Summarize articles, PDFs and text files, and translate the summaries",
	Long: `digest produces extractive summaries of web articles, PDF documents and
text files, estimates their reading time and optionally translates them.

Examples:
  digest summarize https://example.com/story --lang fr
  digest summarize report.pdf --out data/output
  digest chunk long.txt --max-chars 2000
  digest watch --config config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "config file; built-in defaults are used when it does not exist")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(chunkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads --config, falling back to defaults when the default
// config file is absent.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			cfg = config.Default()
		} else {
			return nil, err
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) logger.CloseLogger {
	if out == nil {
		out = os.Stdout
	}
	return logger.NewWithOptions(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Writer:     out,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	})
}
