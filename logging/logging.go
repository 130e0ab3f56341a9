// Package logging builds the diagnostics logger shared by every component.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options configures the logger. Debug replaces the old process-wide flag and is
// decided once, at startup, from the command line.
type Options struct {
	Debug  bool
	Writer io.Writer
}

// New creates a text logger. Debug mode prints everything; otherwise only
// warnings and errors reach the console.
func New(opts Options) *slog.Logger {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger that drops everything. Used when a caller passes nil.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
