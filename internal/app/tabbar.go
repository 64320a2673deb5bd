package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const closeGlyph = "×"

// tabRegion records where one tab landed on the bar, for mouse
// hit-testing. Cells are half-open [start, end); closeX is the cell of
// the close glyph.
type tabRegion struct {
	start, end int
	closeX     int
}

// tabLabel is the text inside one tab cell: title, a space, and the
// close glyph. Styles add one cell of padding either side.
func tabLabel(d *Document) string {
	return d.Title() + " " + closeGlyph
}

// tabRegions computes the bar layout without rendering. View and the
// mouse handler both rely on it, so the geometry stays in one place.
func (m *Model) tabRegions() []tabRegion {
	regions := make([]tabRegion, len(m.tabs))
	x := 0
	for i, d := range m.tabs {
		label := tabLabel(d)
		w := runewidth.StringWidth(label) + 2 // padding cells
		regions[i] = tabRegion{
			start:  x,
			end:    x + w,
			closeX: x + w - 2, // glyph sits before the right padding
		}
		x += w
	}
	return regions
}

// tabAt maps a bar-local x cell to (tab index, on close glyph). Returns
// index -1 when the click missed every tab.
func (m *Model) tabAt(x int) (int, bool) {
	for i, r := range m.tabRegions() {
		if x >= r.start && x < r.end {
			return i, x == r.closeX
		}
	}
	return -1, false
}

func (m *Model) renderTabBar() string {
	var sb strings.Builder
	used := 0
	for i, d := range m.tabs {
		style := m.theme.TabInactive
		if i == m.active {
			style = m.theme.TabActive
		}
		label := tabLabel(d)
		sb.WriteString(style.Render(label))
		used += runewidth.StringWidth(label) + 2
	}
	if used < m.width {
		sb.WriteString(m.theme.TabBar.Render(strings.Repeat(" ", m.width-used)))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
}
