package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"parley/config"
)

// Logger wraps slog so the rest of the codebase never imports it directly.
type Logger struct {
	slog *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Prod {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{slog: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.base().Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.base().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.base().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.base().Error(msg, args...) }

func (l *Logger) Infof(format string, v ...any) { l.base().Info(fmt.Sprintf(format, v...)) }

func (l *Logger) Errorf(format string, v ...any) { l.base().Error(fmt.Sprintf(format, v...)) }

// base tolerates the zero Logger so tests can pass logger.Logger{}.
func (l *Logger) base() *slog.Logger {
	if l.slog == nil {
		return slog.Default()
	}
	return l.slog
}
