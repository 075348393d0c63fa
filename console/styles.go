package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	titleColor   = lipgloss.Color("#A78BFA")
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#F87171")
	mutedColor   = lipgloss.Color("#9CA3AF")
)

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	fault   lipgloss.Style
	muted   lipgloss.Style
}

// newStyles renders against out, so pipes and files get plain text.
func newStyles(out io.Writer, color bool) styles {
	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title:   renderer.NewStyle().Bold(true).Foreground(titleColor),
		success: renderer.NewStyle().Foreground(successColor),
		failure: renderer.NewStyle().Foreground(warningColor),
		fault:   renderer.NewStyle().Bold(true).Foreground(errorColor),
		muted:   renderer.NewStyle().Foreground(mutedColor),
	}
}
