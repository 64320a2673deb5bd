// Package app is the application shell: the ordered tab strip, the status
// bar, the find and file prompts, and the unsaved-changes flow that ties
// documents, editors and scrollbars together.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/scribe/internal/config"
	"github.com/iw2rmb/scribe/internal/log"
)

// mode is the shell's input focus. modeEdit routes keys to the active
// editor; every other mode owns the keyboard until dismissed.
type mode int

const (
	modeEdit mode = iota
	modeFind
	modeOpenPath
	modeSavePath
	modeConfirm
	modeSettings
	modeError
)

// pendingAction is what resumes once an unsaved-changes confirmation (and
// any save-as prompt it spawns) resolves.
type pendingAction int

const (
	actionNone pendingAction = iota
	actionCloseTab
	actionNewFile
	actionQuit
)

// Model is the root Bubble Tea model.
type Model struct {
	cfg   *config.Config
	theme Theme
	keys  KeyMap

	tabs        []*Document
	active      int
	untitledSeq int

	width  int
	height int

	mode  mode
	input textinput.Model

	// Confirmation state: which tab is being asked about and what
	// continues afterwards. For actionQuit the scan resumes at
	// confirmTab+1.
	confirmTab int
	pending    pendingAction

	errMsg string
}

// New builds the shell with one empty untitled tab, opening any given
// files into tabs of their own.
func New(cfg *config.Config, paths []string) *Model {
	m := &Model{
		cfg:   cfg,
		theme: NewTheme(cfg),
		keys:  DefaultKeyMap(),
	}

	input := textinput.New()
	input.CharLimit = 512
	input.Width = 40
	m.input = input

	m.addTab()
	for _, p := range paths {
		d := m.addTab()
		if err := d.Load(p); err != nil {
			m.showError(err)
		}
	}
	// Drop the initial empty tab when files were opened.
	if len(paths) > 0 && len(m.tabs) > 1 {
		m.tabs = m.tabs[1:]
		m.active = len(m.tabs) - 1
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) activeDoc() *Document { return m.tabs[m.active] }

// Titles reports the current tab labels in order.
func (m *Model) Titles() []string {
	titles := make([]string, len(m.tabs))
	for i, d := range m.tabs {
		titles[i] = d.Title()
	}
	return titles
}

// addTab appends a fresh untitled document and activates it.
func (m *Model) addTab() *Document {
	name := "Untitled"
	if m.untitledSeq > 0 {
		name = fmt.Sprintf("Untitled %d", m.untitledSeq+1)
	}
	m.untitledSeq++

	d := newDocument(m.cfg, m.theme, name)
	m.tabs = append(m.tabs, d)
	m.active = len(m.tabs) - 1
	m.layoutActive()
	return d
}

// removeTab drops tab i, keeping the at-least-one-tab invariant: closing
// the last tab replaces it with a fresh empty one.
func (m *Model) removeTab(i int) {
	m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
	if len(m.tabs) == 0 {
		m.addTab()
		return
	}
	if m.active > i {
		m.active--
	} else if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
	m.layoutActive()
}

func (m *Model) nextTab() {
	if len(m.tabs) < 2 {
		return
	}
	m.active = (m.active + 1) % len(m.tabs)
	m.layoutActive()
}

func (m *Model) prevTab() {
	if len(m.tabs) < 2 {
		return
	}
	m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
	m.layoutActive()
}

func (m *Model) selectTab(i int) {
	if i < 0 || i >= len(m.tabs) || i == m.active {
		return
	}
	m.active = i
	m.layoutActive()
}

// contentArea is the region between the tab bar and the status bar.
func (m *Model) contentArea() (x, y, w, h int) {
	h = m.height - 2
	if h < 0 {
		h = 0
	}
	return 0, 1, m.width, h
}

// layoutActive sizes the active document to the content area. Inactive
// tabs are resized lazily when activated.
func (m *Model) layoutActive() {
	if m.width == 0 && m.height == 0 {
		return
	}
	x, y, w, h := m.contentArea()
	m.activeDoc().setArea(x, y, w, h)
}

func (m *Model) showError(err error) {
	m.errMsg = err.Error()
	m.mode = modeError
}

func (m *Model) openPrompt(next mode, prompt, value string) tea.Cmd {
	m.mode = next
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeEdit
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	d := m.activeDoc()
	content := lipgloss.JoinHorizontal(lipgloss.Top, d.ed.View(), d.sb.View())

	status := statusText(d) + fmt.Sprintf("  |  %dpt", d.FontSize())
	statusBar := m.theme.StatusBar.Width(m.width).Render(status)

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabBar(),
		content,
		statusBar,
	)

	switch m.mode {
	case modeConfirm:
		return m.composite(m.renderConfirmDialog(), base)
	case modeError:
		return m.composite(m.renderErrorDialog(), base)
	case modeSettings:
		return m.composite(m.renderSettingsDialog(), base)
	case modeFind:
		return m.composite(m.renderPrompt("Find"), base)
	case modeOpenPath:
		return m.composite(m.renderPrompt("Open file"), base)
	case modeSavePath:
		return m.composite(m.renderPrompt("Save as"), base)
	}
	return base
}

// Run starts the program with mouse reporting enabled; motion events feed
// the scrollbar's hover state.
func Run(cfg *config.Config, paths []string) error {
	p := tea.NewProgram(New(cfg, paths),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Error("program exited: %v", err)
		return err
	}
	return nil
}
