// Package logging provides structured logging with file rotation.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string    // Log level: debug, info, warn, error
	Format     string    // Handler format: text or json
	FilePath   string    // Path to log file (empty = Writer or stderr)
	MaxSizeMB  int       // Max size in MB before rotation
	MaxBackups int       // Max number of old log files to retain
	MaxAgeDays int       // Max age in days to retain old log files
	Compress   bool      // Whether to compress rotated files
	Writer     io.Writer // Destination when FilePath is empty; nil means stderr
}

// DefaultConfig returns sensible defaults for a command-line process:
// warnings and errors only, so stdout stays clean for results.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Format:     "text",
		FilePath:   "",
		MaxSizeMB:  10,
		MaxBackups: 5,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// Setup initializes the global slog logger with the given configuration.
// Returns a cleanup function that should be called on shutdown.
func Setup(cfg Config) (func() error, error) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var writer io.Writer
	cleanup := func() error { return nil }

	switch {
	case cfg.FilePath != "":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		writer = lj
		cleanup = lj.Close
	case cfg.Writer != nil:
		writer = cfg.Writer
	default:
		writer = os.Stderr
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	slog.SetDefault(slog.New(handler))

	return cleanup, nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
