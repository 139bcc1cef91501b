// Package logging builds the structured diagnostic logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to out.
// Without debug only warnings and errors are emitted.
func New(out io.Writer, debug bool) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Nop returns a logger that discards all output.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}
