package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var slogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// Options configure where and how log lines are written.
type Options struct {
	Level  string
	Format string // "text" or "json"
	// Writer defaults to stdout.
	Writer io.Writer

	// File, when set, receives a copy of every line and is rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type implLogger struct {
	logger *log.Logger
	// json is set for the json format and replaces logger
	json   *slog.Logger
	level  string
	closer io.Closer
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return &implLogger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  strings.ToLower(level),
	}
}

// NewWithOptions creates a Logger that also writes to a rotating file when
// opts.File is set. Close releases the file.
func NewWithOptions(opts Options) CloseLogger {
	var out io.Writer = os.Stdout
	if opts.Writer != nil {
		out = opts.Writer
	}
	var closer io.Closer
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB, // megabytes
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays, // days
			Compress:   true,
		}
		out = io.MultiWriter(out, file)
		closer = file
	}
	return newWriterLogger(out, opts.Level, opts.Format == "json", closer)
}

func newWriterLogger(out io.Writer, level string, jsonFormat bool, closer io.Closer) *implLogger {
	l := &implLogger{
		level:  strings.ToLower(level),
		closer: closer,
	}
	if jsonFormat {
		// filtering happens in shouldLog, the handler passes everything
		l.json = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: lowerLevel,
		}))
	} else {
		l.logger = log.New(out, "", log.LstdFlags)
	}
	return l
}

// lowerLevel writes levels as "warn" rather than slog's "WARN".
func lowerLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(strings.ToLower(lvl.String()))
		}
	}
	return a
}

// Close flushes and closes the log file, if any.
func (l *implLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}
	if l.json != nil {
		l.json.Log(ctx, slogLevels[level], fmt.Sprintf(msg, args...))
		return
	}
	l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args)
}

// NewNop returns a Logger that discards everything, for tests.
func NewNop() Logger {
	return newWriterLogger(io.Discard, "error", false, nil)
}
