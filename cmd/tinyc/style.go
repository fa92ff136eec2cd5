package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/you-not-fish/tiny/internal/syntax"
	"github.com/you-not-fish/tiny/internal/types2"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorOK      = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles renders diagnostics for one output stream.
type styles struct {
	pos    lipgloss.Style
	lexErr lipgloss.Style
	synErr lipgloss.Style
	typErr lipgloss.Style
	ok     lipgloss.Style
}

// newStyles returns the styles for w. In "auto" mode colors are used only
// when w is a terminal.
func newStyles(w io.Writer, mode string) *styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "never":
		r.SetColorProfile(termenv.Ascii)
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	}

	return &styles{
		pos: r.NewStyle().
			Foreground(colorMuted),
		lexErr: r.NewStyle().
			Foreground(colorWarning),
		synErr: r.NewStyle().
			Foreground(colorError),
		typErr: r.NewStyle().
			Foreground(colorError).
			Bold(true),
		ok: r.NewStyle().
			Foreground(colorOK),
	}
}

// diagnostic renders err as "file:line:col: msg".
func (s *styles) diagnostic(err error) string {
	var (
		lexErr *syntax.LexError
		synErr *syntax.SyntaxError
		typErr *types2.TypeError
	)
	switch {
	case errors.As(err, &lexErr):
		return s.render(lexErr.Pos, lexErr.Msg, s.lexErr)
	case errors.As(err, &synErr):
		return s.render(synErr.Pos, synErr.Msg, s.synErr)
	case errors.As(err, &typErr):
		return s.render(typErr.Pos, typErr.Msg, s.typErr)
	}
	return s.synErr.Render(err.Error())
}

func (s *styles) render(pos syntax.Pos, msg string, style lipgloss.Style) string {
	return s.pos.Render(pos.String()+":") + " " + style.Render(msg)
}
