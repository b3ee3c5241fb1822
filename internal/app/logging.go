package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel parses a level name. Unknown names map to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level to output.
	Level slog.Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Component is attached to every record when set.
	Component string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:     slog.LevelInfo,
		Output:    os.Stderr,
		Component: "keyforge",
	}
}

// NewLogger creates a text logger.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: cfg.Level}))
	if cfg.Component != "" {
		logger = logger.With("component", cfg.Component)
	}
	return logger
}

// NullLogger returns a logger that discards everything.
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
