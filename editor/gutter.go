package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// lineNumberWidth returns the gutter width for lineCount: the digit count
// plus one trailing space.
func lineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

func (m Model) renderGutterCell(row int, digits int) string {
	numStyle := m.cfg.Style.LineNum
	if m.focused && row == m.buf.Cursor().Row {
		numStyle = m.cfg.Style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}

// GutterText returns the newline-joined line numbers 1..lineCount, the full
// text content of a line-number gutter.
func GutterText(lineCount int) string {
	if lineCount < 1 {
		lineCount = 1
	}
	var sb strings.Builder
	for i := 1; i <= lineCount; i++ {
		if i > 1 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	return sb.String()
}
