package logger

import (
	"io"
	"log/slog"
	"os"
)

const (
	DEBUG   = "debug"
	INFO    = "info"
	WARN    = "warn"
	ERROR   = "error"
	JSON    = "json"
	TEXT    = "text"
	SERVICE = "service"
)

type Logger struct {
	*slog.Logger
}

type Config struct {
	Level     string
	Format    string
	Output    io.Writer
	AddSource bool
	Service   string
}

var levels = map[string]slog.Level{
	DEBUG: slog.LevelDebug,
	INFO:  slog.LevelInfo,
	WARN:  slog.LevelWarn,
	ERROR: slog.LevelError,
}

func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	level, ok := levels[cfg.Level]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == TEXT {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}

	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String(SERVICE, cfg.Service),
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// Fatal logs at error level and exits with status code 1.
// Reserved for unrecoverable startup and shutdown failures.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}
