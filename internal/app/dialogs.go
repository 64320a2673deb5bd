package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// composite centers a dialog over the base view.
func (m *Model) composite(dialog, base string) string {
	return overlay.Composite(dialog, base, overlay.Center, overlay.Center, 0, 0)
}

func (m *Model) renderConfirmDialog() string {
	d := m.tabs[m.confirmTab]
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.DialogTitle.Render("Unsaved changes"),
		"",
		fmt.Sprintf("Save changes to %s?", d.Name()),
		"",
		m.theme.DialogHint.Render("[y] save   [n] discard   [esc] cancel"),
	)
	return m.theme.Dialog.Render(body)
}

func (m *Model) renderErrorDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.DialogTitle.Render("Error"),
		"",
		m.errMsg,
		"",
		m.theme.DialogHint.Render("[enter] dismiss"),
	)
	return m.theme.Dialog.Render(body)
}

func (m *Model) renderSettingsDialog() string {
	check := "[ ]"
	if m.activeDoc().ed.ShowLineNums() {
		check = "[x]"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.DialogTitle.Render("Settings"),
		"",
		fmt.Sprintf("%s Show line numbers", check),
		"",
		m.theme.DialogHint.Render("[space] toggle   [esc] close"),
	)
	return m.theme.Dialog.Render(body)
}

// renderPrompt draws the one-line input overlays (find, open, save as).
func (m *Model) renderPrompt(title string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.DialogTitle.Render(title),
		"",
		m.input.View(),
		"",
		m.theme.DialogHint.Render("[enter] accept   [esc] cancel"),
	)
	return m.theme.Dialog.Render(body)
}
