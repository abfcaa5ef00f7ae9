package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/news-api/internal/pkg/config"
)

// LevelCritical sits above slog.LevelError; Fatal and Panic log at this level
const LevelCritical = slog.Level(12)

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: LevelCritical,
}

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger builds the process wide logger from settings. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(s *config.LoggerSettings) (Logger, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if s.LogType == config.LogTypeFile {
		return NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge), nil
	}
	return NewConsoleLogger(s.LogLevel, s.LogFormat), nil
}

// parseLevel falls back to info for unknown names
func parseLevel(name string) slog.Level {
	if level, ok := levels[name]; ok {
		return level
	}
	return slog.LevelInfo
}

// replaceLevel renders LevelCritical as "CRITICAL" instead of "ERROR+4"
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok && level == LevelCritical {
			a.Value = slog.StringValue("CRITICAL")
		}
	}
	return a
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
