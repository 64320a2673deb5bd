package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocHome):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.buf.InsertText("\t")
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.buf.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.buf.InsertText(normalizeNewlines(s))
}

// normalizeNewlines folds CRLF and CR from external sources into '\n'.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
