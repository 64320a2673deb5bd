package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/internal/log"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutActive()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if m.mode != modeEdit {
			return m, nil
		}
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeFind, modeOpenPath, modeSavePath:
		return m.updatePrompt(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeSettings:
		return m.updateSettings(msg)
	case modeError:
		switch msg.String() {
		case "enter", "esc":
			m.mode = modeEdit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.requestQuit()

	case key.Matches(msg, m.keys.NewTab):
		m.addTab()
		return m, nil

	case key.Matches(msg, m.keys.NewFile):
		return m, m.requestNewFile()

	case key.Matches(msg, m.keys.CloseTab):
		return m, m.requestCloseTab(m.active)

	case key.Matches(msg, m.keys.Open):
		return m, m.openPrompt(modeOpenPath, "Path: ", "")

	case key.Matches(msg, m.keys.Save):
		return m, m.saveActive()

	case key.Matches(msg, m.keys.SaveAs):
		return m, m.openPrompt(modeSavePath, "Path: ", m.activeDoc().Path())

	case key.Matches(msg, m.keys.Find):
		return m, m.openPrompt(modeFind, "Find: ", "")

	case key.Matches(msg, m.keys.NextTab):
		m.nextTab()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.prevTab()
		return m, nil

	case key.Matches(msg, m.keys.ZoomIn):
		m.activeDoc().zoomIn()
		return m, nil

	case key.Matches(msg, m.keys.ZoomOut):
		m.activeDoc().zoomOut()
		return m, nil

	case key.Matches(msg, m.keys.ZoomReset):
		m.activeDoc().zoomReset()
		return m, nil

	case key.Matches(msg, m.keys.LineNumbers):
		d := m.activeDoc()
		d.ed = d.ed.SetShowLineNums(!d.ed.ShowLineNums())
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.mode = modeSettings
		return m, nil
	}

	// Everything else is an editing key for the active document.
	d := m.activeDoc()
	var cmd tea.Cmd
	d.ed, cmd = d.ed.Update(msg)
	d.syncScrollbar()
	return m, cmd
}

// updatePrompt handles the three one-line input overlays.
func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		was := m.mode
		m.closePrompt()
		if was == modeFind {
			d := m.activeDoc()
			d.ed = d.ed.ClearHighlights()
		}
		if was == modeSavePath {
			m.abortPending()
		}
		return m, nil

	case "enter":
		value := m.input.Value()
		switch m.mode {
		case modeFind:
			m.findAll(value)
			return m, nil // overlay stays open for repeated searches
		case modeOpenPath:
			m.closePrompt()
			m.openFile(value)
			return m, nil
		case modeSavePath:
			m.closePrompt()
			return m, m.saveActiveAs(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = modeEdit
		d := m.tabs[m.confirmTab]
		saved, err := d.Save()
		if err != nil {
			m.abortPending()
			m.showError(err)
			return m, nil
		}
		if !saved {
			// No path yet: route through save-as, then resume the
			// pending action from the prompt handler.
			m.selectTab(m.confirmTab)
			return m, m.openPrompt(modeSavePath, "Path: ", "")
		}
		return m, m.continuePending()

	case "n", "N":
		// Discard proceeds without touching the tab: if the pending
		// action is later cancelled, the unsaved state must survive.
		m.mode = modeEdit
		return m, m.continuePending()

	case "esc":
		m.mode = modeEdit
		m.abortPending()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "enter":
		d := m.activeDoc()
		d.ed = d.ed.SetShowLineNums(!d.ed.ShowLineNums())
	case "esc":
		m.mode = modeEdit
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	d := m.activeDoc()

	// Tab bar clicks.
	if msg.Y == 0 {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, onClose := m.tabAt(msg.X); i >= 0 {
				if onClose {
					return m, m.requestCloseTab(i)
				}
				m.selectTab(i)
			}
		}
		return m, nil
	}

	// The scrollbar self-hit-tests against screen coordinates, so it
	// sees every event; hover and drag need motion outside its column.
	d.sb = d.sb.Update(msg)

	var cmd tea.Cmd
	d.ed, cmd = d.ed.Update(msg)
	d.syncScrollbar()
	return m, cmd
}

// findAll highlights every occurrence of the query in the active
// document, clearing the previous matches first.
func (m *Model) findAll(query string) {
	d := m.activeDoc()
	d.ed = d.ed.ClearHighlights()
	if query == "" {
		return
	}
	matches := d.ed.Buffer().FindAll(query)
	d.ed = d.ed.SetHighlights(matches)
	log.Debug("find %q: %d matches", query, len(matches))
}

// openFile loads path into a brand-new tab. On failure the fresh empty
// tab stays, unmodified, behind the error dialog.
func (m *Model) openFile(path string) {
	d := m.addTab()
	if err := d.Load(path); err != nil {
		m.showError(err)
	}
}

func (m *Model) saveActive() tea.Cmd {
	d := m.activeDoc()
	saved, err := d.Save()
	if err != nil {
		m.showError(err)
		return nil
	}
	if !saved {
		return m.openPrompt(modeSavePath, "Path: ", "")
	}
	return nil
}

// saveActiveAs completes a save-as prompt, then resumes any pending
// close or quit that was waiting on it.
func (m *Model) saveActiveAs(path string) tea.Cmd {
	if path == "" {
		m.abortPending()
		return nil
	}
	if err := m.activeDoc().SaveAs(path); err != nil {
		m.abortPending()
		m.showError(err)
		return nil
	}
	return m.continuePending()
}

// requestCloseTab starts closing tab i, asking about unsaved changes
// first.
func (m *Model) requestCloseTab(i int) tea.Cmd {
	if m.tabs[i].Modified() {
		m.pending = actionCloseTab
		m.confirmTab = i
		m.mode = modeConfirm
		return nil
	}
	m.removeTab(i)
	return nil
}

// requestNewFile empties the active tab in place (text, path and
// modified flag) after the unsaved-changes check.
func (m *Model) requestNewFile() tea.Cmd {
	if m.activeDoc().Modified() {
		m.pending = actionNewFile
		m.confirmTab = m.active
		m.mode = modeConfirm
		return nil
	}
	m.activeDoc().reset()
	return nil
}

// requestQuit scans tabs in order for unsaved changes; any cancel along
// the way aborts the exit.
func (m *Model) requestQuit() tea.Cmd {
	m.pending = actionQuit
	return m.continueQuitScan(0)
}

func (m *Model) continueQuitScan(from int) tea.Cmd {
	for i := from; i < len(m.tabs); i++ {
		if m.tabs[i].Modified() {
			m.confirmTab = i
			m.mode = modeConfirm
			return nil
		}
	}
	m.pending = actionNone
	return tea.Quit
}

// continuePending resumes the action that triggered the last
// confirmation.
func (m *Model) continuePending() tea.Cmd {
	switch m.pending {
	case actionCloseTab:
		m.pending = actionNone
		m.removeTab(m.confirmTab)
		return nil
	case actionNewFile:
		m.pending = actionNone
		m.tabs[m.confirmTab].reset()
		return nil
	case actionQuit:
		return m.continueQuitScan(m.confirmTab + 1)
	}
	return nil
}

func (m *Model) abortPending() {
	m.pending = actionNone
}
