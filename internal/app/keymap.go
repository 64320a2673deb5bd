package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the shell-level bindings. Editing keys live in the editor's
// own keymap; these cover tab, file and window management.
type KeyMap struct {
	NewTab   key.Binding
	NewFile  key.Binding
	Open     key.Binding
	Save     key.Binding
	SaveAs   key.Binding
	CloseTab key.Binding
	Quit     key.Binding

	Find        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	ZoomIn      key.Binding
	ZoomOut     key.Binding
	ZoomReset   key.Binding
	LineNumbers key.Binding
	Settings    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		NewFile: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new file"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open file"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		// Terminals disagree on shifted ctrl chords, so alt+s is bound
		// alongside ctrl+shift+s.
		SaveAs: key.NewBinding(
			key.WithKeys("ctrl+shift+s", "alt+s"),
			key.WithHelp("alt+s", "save as"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Find: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "find"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+pgdown"),
			key.WithHelp("ctrl+pgdn", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+pgup"),
			key.WithHelp("ctrl+pgup", "previous tab"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("alt+=", "alt++"),
			key.WithHelp("alt+=", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("alt+-"),
			key.WithHelp("alt+-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("alt+0"),
			key.WithHelp("alt+0", "reset zoom"),
		),
		LineNumbers: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle line numbers"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+,", "alt+,"),
			key.WithHelp("alt+,", "settings"),
		),
	}
}
