package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheelMouse(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.buf == nil {
		return m, nil
	}

	x := msg.X - m.originX
	y := msg.Y - m.originY

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if !m.mouseInBounds(x, y) {
			return m, nil
		}

		p := m.screenToDocPos(x, y)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if raw, ok := m.buf.SelectionRaw(); ok {
				anchor = raw.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetCursor(p)
			m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
			m.buf.ClearSelection()
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, nil
		}

		x, y = m.clampMouseToBounds(x, y)
		p := m.screenToDocPos(x, y)
		m.buf.SetCursor(p)
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: p})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, nil
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		if x < 0 {
			x = 0
		}
		if x >= m.viewport.Width {
			x = m.viewport.Width - 1
		}
	}
	if m.viewport.Height > 0 {
		if y < 0 {
			y = 0
		}
		if y >= m.viewport.Height {
			y = m.viewport.Height - 1
		}
	}
	return x, y
}

// screenToDocPos maps content-local mouse coordinates to a document
// position: (0,0) is the top-left of the visible content region.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}

	row := m.viewport.YOffset + y
	if row < 0 {
		row = 0
	}
	if last := m.buf.LineCount() - 1; row > last {
		row = last
	}

	if x < 0 {
		x = 0
	}
	if m.cfg.ShowLineNums {
		gw := lineNumberWidth(m.buf.LineCount())
		if x < gw {
			// Gutter clicks land at the line start.
			return buffer.Pos{Row: row, Col: 0}
		}
		x -= gw
	}

	line := []rune(m.buf.Line(row))
	col := colForCell(line, x+m.xOffset, m.cfg.TabWidth)
	return buffer.Pos{Row: row, Col: col}
}
