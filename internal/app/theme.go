package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/internal/config"
	"github.com/iw2rmb/scribe/scrollbar"
)

// Theme bundles the lipgloss styles the shell draws with, derived from the
// loaded configuration.
type Theme struct {
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabBar      lipgloss.Style
	StatusBar   lipgloss.Style
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	DialogHint  lipgloss.Style
	Prompt      lipgloss.Style

	Editor    editor.Style
	Scrollbar scrollbar.Styles
}

// NewTheme builds the style set from config colors. On terminals with a
// light background the editor foreground is darkened so default text stays
// readable against the user's palette.
func NewTheme(cfg *config.Config) Theme {
	fg := lipgloss.Color(cfg.Theme.Foreground)
	if !termenv.HasDarkBackground() && cfg.Theme.Foreground == config.Default().Theme.Foreground {
		fg = lipgloss.Color("#303030")
	}

	ed := editor.DefaultStyle()
	ed.Text = lipgloss.NewStyle().Foreground(fg)
	ed.Selection = lipgloss.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color(cfg.Theme.Selection))
	ed.Highlight = lipgloss.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color(cfg.Theme.Highlight))

	sb := scrollbar.DefaultStyles()
	sb.Track = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.ScrollbarTrack))
	sb.Thumb = lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.ScrollbarThumb))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Background(lipgloss.Color(cfg.Theme.TabInactive))

	return Theme{
		TabActive: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(cfg.Theme.TabActive)).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color(cfg.Theme.TabInactive)).
			Padding(0, 1),
		TabBar: lipgloss.NewStyle().
			Background(lipgloss.Color(cfg.Theme.TabInactive)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color(cfg.Theme.StatusBar)).
			Padding(0, 1),
		Dialog:      dialog,
		DialogTitle: lipgloss.NewStyle().Bold(true),
		DialogHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Prompt:      lipgloss.NewStyle().Foreground(fg),
		Editor:      ed,
		Scrollbar:   sb,
	}
}
