package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/scribe/buffer"
)

type cellClass int

const (
	classText cellClass = iota
	classHighlight
	classSelection
	classCursor
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lineCount := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := gutterDigits(lineCount)

	out := make([]string, 0, lineCount)
	for row := 0; row < lineCount; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutterCell(row, digits))
		}
		sb.WriteString(m.renderLine(row, cursor, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(row int, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	line := []rune(m.buf.Line(row))

	selStart, selEnd, selHere := -1, -1, false
	if selOK {
		selStart, selEnd, selHere = rangeOnRow(sel, row, len(line))
	}

	left := m.xOffset
	right := left + m.contentWidth()
	if right <= left {
		right = left
	}

	classAt := func(col int) cellClass {
		if m.focused && row == cursor.Row && col == cursor.Col {
			return classCursor
		}
		if selHere && col >= selStart && col < selEnd {
			return classSelection
		}
		for _, h := range m.highlights {
			if s, e, ok := rangeOnRow(h, row, len(line)); ok && col >= s && col < e {
				return classHighlight
			}
		}
		return classText
	}

	var sb strings.Builder
	var run strings.Builder
	runClass := classText

	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runClass).Render(run.String()))
		run.Reset()
	}

	cell := 0
	for col, r := range line {
		w := runeCellWidth(r)
		text := string(r)
		if r == '\t' {
			w = m.cfg.TabWidth - cell%m.cfg.TabWidth
			text = strings.Repeat(" ", w)
		}
		visible := cell+w > left && cell < right
		cell += w
		if !visible {
			continue
		}

		c := classAt(col)
		if c != runClass {
			flush()
			runClass = c
		}
		run.WriteString(text)
	}
	flush()

	// Cursor resting at end of line renders as a styled blank.
	if m.focused && row == cursor.Row && cursor.Col == len(line) && cell >= left && cell < right {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}

	return sb.String()
}

func (m Model) styleFor(c cellClass) lipgloss.Style {
	switch c {
	case classCursor:
		return m.cfg.Style.Cursor
	case classSelection:
		return m.cfg.Style.Selection
	case classHighlight:
		return m.cfg.Style.Highlight
	default:
		return m.cfg.Style.Text
	}
}

// rangeOnRow projects a document range onto one row, returning the covered
// column span [start, end).
func rangeOnRow(r buffer.Range, row, lineLen int) (start, end int, ok bool) {
	r = buffer.NormalizeRange(r)
	if row < r.Start.Row || row > r.End.Row {
		return 0, 0, false
	}
	start = 0
	end = lineLen
	if row == r.Start.Row {
		start = r.Start.Col
	}
	if row == r.End.Row {
		end = r.End.Col
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func runeCellWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// cellForCol returns the visual cell where col starts, tabs expanded.
func cellForCol(line []rune, col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 4
	}
	cell := 0
	for i, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			cell += tabWidth - cell%tabWidth
			continue
		}
		cell += runeCellWidth(r)
	}
	return cell
}

// colForCell returns the rune column containing the visual cell, or the line
// length when cell is past the end.
func colForCell(line []rune, cell, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 4
	}
	pos := 0
	for i, r := range line {
		w := runeCellWidth(r)
		if r == '\t' {
			w = tabWidth - pos%tabWidth
		}
		if cell < pos+w {
			return i
		}
		pos += w
	}
	return len(line)
}
