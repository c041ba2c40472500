package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Summary     SummaryConfig     `yaml:"summary"`
	Reading     ReadingConfig     `yaml:"reading"`
	Translate   TranslateConfig   `yaml:"translate"`
	Extract     ExtractConfig     `yaml:"extract"`
	Paths       PathsConfig       `yaml:"paths"`
	Store       StoreConfig       `yaml:"store"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type SummaryConfig struct {
	Percentage   float64 `yaml:"percentage"`
	MinSentences int     `yaml:"min_sentences"`
	MaxSentences int     `yaml:"max_sentences"`
	Tokenizer    string  `yaml:"tokenizer"`
}

type ReadingConfig struct {
	WordsPerMinute int `yaml:"words_per_minute"`
}

type TranslateConfig struct {
	TargetLanguage string   `yaml:"target_language"`
	MaxChars       int      `yaml:"max_chars"`
	Model          string   `yaml:"model"`
	Concurrency    int      `yaml:"concurrency"`
	APIKeys        []string `yaml:"-"`
}

type ExtractConfig struct {
	MaxPDFPages        int    `yaml:"max_pdf_pages"`
	MinContentChars    int    `yaml:"min_content_chars"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	MaxImages          int    `yaml:"max_images"`
	UserAgent          string `yaml:"user_agent"`
	PdftotextPath      string `yaml:"pdftotext_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type StoreConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
	SettleMillis  int `yaml:"settle_ms"`
}

// Load reads a YAML config file, picks up secrets from .env and the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// .env is optional
	_ = godotenv.Load()
	cfg.Translate.APIKeys = splitKeys(os.Getenv("GEMINI_API_KEYS"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Summary.Percentage < 0 || c.Summary.Percentage > 1 {
		return fmt.Errorf("summary.percentage must be between 0 and 1")
	}
	if c.Summary.MaxSentences != 0 && c.Summary.MaxSentences < c.Summary.MinSentences {
		return fmt.Errorf("summary.max_sentences must not be below summary.min_sentences")
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json")
	}

	if c.Summary.Percentage == 0 {
		c.Summary.Percentage = 0.3
	}
	if c.Summary.MinSentences == 0 {
		c.Summary.MinSentences = 3
	}
	if c.Summary.MaxSentences == 0 {
		c.Summary.MaxSentences = max(10, c.Summary.MinSentences)
	}
	if c.Summary.Tokenizer == "" {
		c.Summary.Tokenizer = "punkt"
	}
	if c.Reading.WordsPerMinute == 0 {
		c.Reading.WordsPerMinute = 200
	}
	if c.Translate.TargetLanguage == "" {
		c.Translate.TargetLanguage = "en"
	}
	if c.Translate.MaxChars == 0 {
		c.Translate.MaxChars = 5000
	}
	if c.Translate.Model == "" {
		c.Translate.Model = "gemini-2.5-flash"
	}
	if c.Translate.Concurrency == 0 {
		c.Translate.Concurrency = 4
	}
	if c.Extract.MaxPDFPages == 0 {
		c.Extract.MaxPDFPages = 50
	}
	if c.Extract.MinContentChars == 0 {
		c.Extract.MinContentChars = 50
	}
	if c.Extract.HTTPTimeoutSeconds == 0 {
		c.Extract.HTTPTimeoutSeconds = 10
	}
	if c.Extract.MaxImages == 0 {
		c.Extract.MaxImages = 3
	}
	if c.Extract.UserAgent == "" {
		c.Extract.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	}
	if c.Extract.PdftotextPath == "" {
		c.Extract.PdftotextPath = "pdftotext"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Store.SQLitePath == "" {
		c.Store.SQLitePath = "data/digest.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 15
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 28
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.SettleMillis == 0 {
		c.Performance.SettleMillis = 500
	}

	return nil
}

// Default returns a validated config rooted at data/, for one-shot CLI use
// without a config file.
func Default() *Config {
	cfg := &Config{Paths: PathsConfig{Input: "data/inbox", Output: "data/output"}}
	_ = godotenv.Load()
	cfg.Translate.APIKeys = splitKeys(os.Getenv("GEMINI_API_KEYS"))
	_ = cfg.Validate()
	return cfg
}
