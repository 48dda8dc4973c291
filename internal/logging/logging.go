// Package logging builds the slog loggers used by the service and the CLI.
//
// The engine packages do not log. Anything that does takes a *slog.Logger
// built here:
//
//	logger := logging.New(logging.Config{Level: "debug", JSON: true, Service: "jsonguide"})
//	logger.Info("serving", "addr", addr)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config configures a logger. The zero value writes Info and above to stderr
// in text format.
type Config struct {
	// Level is one of "debug", "info", "warn" or "error". Empty means info.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`

	// JSON selects the JSON handler instead of the text handler.
	JSON bool `yaml:"json"`

	// Service is attached to every record as the "service" attribute.
	Service string `yaml:"-" validate:"-"`

	// Output defaults to os.Stderr.
	Output io.Writer `yaml:"-" validate:"-"`
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a logger from cfg. An unknown level falls back to info.
func New(cfg Config) *slog.Logger {
	level, _ := ParseLevel(cfg.Level)

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
