package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	// Screen-space origin of the content region, for mouse hit-testing.
	originX int
	originY int

	highlights []buffer.Range

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.followCursor()
	m.rebuildContent()
	return m
}

// SetPosition records the content region's top-left cell in screen
// coordinates so raw mouse events can be mapped into the document.
func (m Model) SetPosition(x, y int) Model {
	m.originX = x
	m.originY = y
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) ShowLineNums() bool { return m.cfg.ShowLineNums }

func (m Model) SetShowLineNums(on bool) Model {
	if m.cfg.ShowLineNums == on {
		return m
	}
	m.cfg.ShowLineNums = on
	m.rebuildContent()
	return m
}

// SetHighlights replaces the search match overlay.
func (m Model) SetHighlights(ranges []buffer.Range) Model {
	m.highlights = append([]buffer.Range(nil), ranges...)
	m.rebuildContent()
	return m
}

func (m Model) ClearHighlights() Model {
	if m.highlights == nil {
		return m
	}
	m.highlights = nil
	m.rebuildContent()
	return m
}

func (m Model) Highlights() []buffer.Range {
	return append([]buffer.Range(nil), m.highlights...)
}

// ScrollFractions reports the visible slice of the document as a fraction
// pair in [0,1], the shape scrollbars consume.
func (m Model) ScrollFractions() (first, last float64) {
	total := m.buf.LineCount()
	h := m.viewport.Height
	if total <= 0 || h <= 0 || total <= h {
		return 0, 1
	}
	first = float64(m.viewport.YOffset) / float64(total)
	last = float64(m.viewport.YOffset+h) / float64(total)
	if last > 1 {
		last = 1
	}
	return first, last
}

// ScrollToFraction repositions the view so that fraction of the document is
// above the top edge ("moveto" semantics).
func (m Model) ScrollToFraction(f float64) Model {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	total := m.buf.LineCount()
	maxOffset := total - m.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := int(f * float64(total))
	if offset > maxOffset {
		offset = maxOffset
	}
	m.viewport.SetYOffset(offset)
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd := m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
			m.rebuildContent()
		}
		return m, cmd
	case tea.MouseMsg:
		m, cmd := m.updateMouse(msg)
		if m.syncFromBuffer() {
			m.rebuildContent()
		}
		return m, cmd
	default:
		// Hosts may drive edits by mutating the buffer directly.
		if m.syncFromBuffer() {
			m.followCursor()
			m.rebuildContent()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer reports whether the buffer changed since the last render.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor keeps the cursor inside the viewport, vertically and
// horizontally.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	h := m.viewport.Height
	if h > 0 {
		y := m.viewport.YOffset
		if cur.Row < y {
			m.viewport.SetYOffset(cur.Row)
		} else if cur.Row >= y+h {
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		return
	}
	cell := cellForCol([]rune(m.buf.Line(cur.Row)), cur.Col, m.cfg.TabWidth)
	if cell < m.xOffset {
		m.xOffset = cell
	} else if cell >= m.xOffset+w {
		m.xOffset = cell - w + 1
	}
}

// contentWidth is the width left for text once the gutter is accounted for.
func (m Model) contentWidth() int {
	w := m.viewport.Width
	if m.cfg.ShowLineNums {
		w -= lineNumberWidth(m.buf.LineCount())
	}
	if w < 0 {
		w = 0
	}
	return w
}
