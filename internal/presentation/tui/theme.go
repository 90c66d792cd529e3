package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Status marks printed in front of messages.
const (
	MarkOK = "✅"
)

// Theme colors the short tokens of CLI messages.
// Only single-line tokens are styled, so message text stays byte-identical
// when colors are off.
type Theme struct {
	ok   lipgloss.Style
	err  lipgloss.Style
	warn lipgloss.Style
	name lipgloss.Style
}

// NewTheme builds a theme for output written to w.
// Colors are disabled when w is not a terminal or NO_COLOR is set.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) || termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return Theme{
		ok:   r.NewStyle().Foreground(lipgloss.Color("#34d399")),
		err:  r.NewStyle().Foreground(lipgloss.Color("#fb7185")).Bold(true),
		warn: r.NewStyle().Foreground(lipgloss.Color("#fbbf24")),
		name: r.NewStyle().Foreground(lipgloss.Color("#a78bfa")),
	}
}

// PlainTheme returns a theme that never emits escape sequences.
func PlainTheme() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Theme{
		ok:   r.NewStyle(),
		err:  r.NewStyle(),
		warn: r.NewStyle(),
		name: r.NewStyle(),
	}
}

// OK styles a success token.
func (t Theme) OK(s string) string { return t.ok.Render(s) }

// Error styles an error token.
func (t Theme) Error(s string) string { return t.err.Render(s) }

// Warn styles a warning token.
func (t Theme) Warn(s string) string { return t.warn.Render(s) }

// Name styles an environment name.
func (t Theme) Name(s string) string { return t.name.Render(s) }

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
