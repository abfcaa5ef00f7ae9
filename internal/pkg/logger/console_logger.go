package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/news-api/internal/pkg/config"
)

// ConsoleLogger is an implementation of Logger that logs to stdout.
type ConsoleLogger struct {
	slogAdapter
}

// NewConsoleLogger creates a new console logger with the specified log level and format.
func NewConsoleLogger(level, format string) Logger {
	return newConsoleLogger(os.Stdout, level, format)
}

func newConsoleLogger(w io.Writer, level, format string) *ConsoleLogger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: replaceLevel,
	}

	var handler slog.Handler
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &ConsoleLogger{slogAdapter{logger: slog.New(handler)}}
}

// slogAdapter maps the variadic Logger methods onto a slog.Logger.
type slogAdapter struct {
	logger *slog.Logger
}

// Debug logs a debug message.
func (l *slogAdapter) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *slogAdapter) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *slogAdapter) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *slogAdapter) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at LevelCritical and exits.
func (l *slogAdapter) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), LevelCritical, formatArgs(args...))
	os.Exit(1)
}

// Panic logs at LevelCritical and panics with the message.
func (l *slogAdapter) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Log(context.Background(), LevelCritical, msg)
	panic(msg)
}
