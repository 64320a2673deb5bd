// Package scrollbar implements a custom-drawn vertical scroll indicator for
// Bubble Tea layouts: a one-cell-wide track with a draggable thumb that
// changes color on hover and while dragging.
//
// The widget is pure presentation: it never touches the content it scrolls.
// Hosts feed it the visible fraction pair via Set and receive absolute
// "moveto" fractions through the OnScroll callback.
package scrollbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// State is the pointer interaction state of the widget.
type State int

const (
	StateIdle State = iota
	StateHover
	StateDrag
)

// Styles selects the rendering for the track and the thumb in each state.
type Styles struct {
	Track       lipgloss.Style
	Thumb       lipgloss.Style
	ThumbHover  lipgloss.Style
	ThumbActive lipgloss.Style
}

// DefaultStyles returns the subtle-by-default palette: the thumb grows more
// visible on hover and brighter still while dragging.
func DefaultStyles() Styles {
	return Styles{
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e1e")),
		Thumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3a3a")),
		ThumbHover:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
		ThumbActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

const (
	thumbRune = "┃"
	trackRune = "│"
)

// Model is the scrollbar widget. The zero value is unusable; construct with
// New.
type Model struct {
	styles Styles

	// Screen-space origin of the track; the widget hit-tests raw mouse
	// coordinates against it.
	originX int
	originY int

	height int

	first float64
	last  float64

	thumbTop  int
	thumbSize int
	minThumb  int

	state        State
	dragStartY   int
	dragStartTop int

	// OnScroll receives absolute scroll fractions in [0,1] ("moveto").
	OnScroll func(fraction float64)
}

func New(onScroll func(fraction float64)) Model {
	return Model{
		styles:   DefaultStyles(),
		minThumb: 1,
		first:    0,
		last:     1,
		OnScroll: onScroll,
	}
}

func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetPosition records the track's top-left cell in screen coordinates.
func (m Model) SetPosition(x, y int) Model {
	m.originX = x
	m.originY = y
	return m
}

func (m Model) SetHeight(h int) Model {
	if h < 0 {
		h = 0
	}
	m.height = h
	m.thumbTop, m.thumbSize = thumbBounds(m.first, m.last, m.height, m.minThumb)
	return m
}

func (m Model) Height() int { return m.height }

func (m Model) State() State { return m.state }

// Set updates the visible fraction pair, mirroring the (first, last)
// contract of toolkit scrollbars: first is the fraction of content above the
// view, last the fraction above the view's bottom edge.
func (m Model) Set(first, last float64) Model {
	m.first = clampFloat(first, 0, 1)
	m.last = clampFloat(last, 0, 1)
	m.thumbTop, m.thumbSize = thumbBounds(m.first, m.last, m.height, m.minThumb)
	return m
}

// ThumbBounds exposes the computed thumb rectangle for layout and tests.
func (m Model) ThumbBounds() (top, size int) {
	return m.thumbTop, m.thumbSize
}

func (m Model) contains(x, y int) bool {
	return m.height > 0 &&
		x == m.originX &&
		y >= m.originY && y < m.originY+m.height
}

func (m Model) onThumb(localY int) bool {
	return localY >= m.thumbTop && localY < m.thumbTop+m.thumbSize
}

// Update handles pointer interaction. Hover tracking needs the host program
// to run with mouse motion events enabled (tea.WithMouseAllMotion).
func (m Model) Update(msg tea.MouseMsg) Model {
	inside := m.contains(msg.X, msg.Y)
	localY := msg.Y - m.originY

	switch msg.Action {
	case tea.MouseActionMotion:
		if m.state == StateDrag {
			m.drag(localY)
			return m
		}
		if inside {
			m.state = StateHover
		} else {
			m.state = StateIdle
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return m
		}
		m.state = StateDrag
		m.dragStartY = localY
		m.dragStartTop = m.thumbTop
		if !m.onThumb(localY) {
			// Track press: jump straight to the pressed position.
			m.moveTo(float64(localY) / float64(m.height))
		}

	case tea.MouseActionRelease:
		if m.state != StateDrag {
			return m
		}
		if inside {
			m.state = StateHover
		} else {
			m.state = StateIdle
		}
	}

	return m
}

func (m *Model) drag(localY int) {
	delta := localY - m.dragStartY
	newTop := clampInt(m.dragStartTop+delta, 0, m.height-m.thumbSize)
	m.moveTo(dragFraction(newTop, m.height, m.thumbSize))
}

func (m *Model) moveTo(fraction float64) {
	if m.OnScroll == nil {
		return
	}
	m.OnScroll(clampFloat(fraction, 0, 1))
}

// View renders the track as a column of single-cell rows.
func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}

	thumbStyle := m.styles.Thumb
	switch m.state {
	case StateDrag:
		thumbStyle = m.styles.ThumbActive
	case StateHover:
		thumbStyle = m.styles.ThumbHover
	}

	rows := make([]string, 0, m.height)
	for y := 0; y < m.height; y++ {
		if y >= m.thumbTop && y < m.thumbTop+m.thumbSize {
			rows = append(rows, thumbStyle.Render(thumbRune))
		} else {
			rows = append(rows, m.styles.Track.Render(trackRune))
		}
	}
	return strings.Join(rows, "\n")
}

// thumbBounds computes the thumb rectangle for a visible fraction pair.
// The thumb is never smaller than minSize and never extends past the track.
func thumbBounds(first, last float64, track, minSize int) (top, size int) {
	if track <= 0 {
		return 0, 0
	}
	if minSize < 1 {
		minSize = 1
	}

	top = int(first * float64(track))
	size = int((last - first) * float64(track))
	if size < minSize {
		size = minSize
	}
	if size > track {
		size = track
	}
	if top+size > track {
		top = track - size
	}
	if top < 0 {
		top = 0
	}
	return top, size
}

// dragFraction is the inverse of the thumb placement: a thumb top within
// [0, track-size] maps linearly onto [0,1]. A thumb filling the track maps
// to 0.
func dragFraction(newTop, track, size int) float64 {
	if track <= size {
		return 0
	}
	return float64(newTop) / float64(track-size)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
