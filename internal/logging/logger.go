package logging

import (
	"io"
	"log/slog"
	"math"
	"os"
)

// New creates the venvctl logger at the given level.
// It writes to Stderr so it never mixes with the command output on Stdout.
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter creates a text logger on w.
// It standardizes common keys (e.g., "error" -> "err").
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}

// ForDebug returns a debug logger on Stderr when debug is set, otherwise a no-op logger.
func ForDebug(debug bool) *slog.Logger {
	if debug {
		return New(slog.LevelDebug)
	}
	return NewNop()
}
