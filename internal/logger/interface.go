package logger

import "context"

// Logger is a leveled, printf-style logger.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

// CloseLogger is a Logger holding a file that must be closed.
type CloseLogger interface {
	Logger
	Close() error
}
