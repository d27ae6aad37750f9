// Package logging provides structured logging configuration using log/slog.
//
// Table views attach their shape and instance ID to every entry so that the
// mutations of one view can be followed through a shared log file.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup builds a logger for level and format, installs it as the slog
// default and returns it.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// ForTable returns a logger carrying the table shape and instance ID.
//
// Usage:
//
//	log := logging.ForTable(slog.Default(), "check", store.ID())
//	log.Debug("row added", "rows", store.Len())
func ForTable(logger *slog.Logger, shape, tableID string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("shape", shape, "table_id", tableID)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
