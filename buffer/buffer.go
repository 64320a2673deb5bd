package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Version bumps on any observable change (including cursor and selection
// moves); TextVersion bumps only when the text itself changes, which is what
// modification tracking cares about.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Row: 0, Col: 0},
		sel:    selectionState{},
		opt:    opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// SetText replaces the whole document, e.g. when loading a file.
// History is discarded and the cursor returns to the document start.
// TextVersion is left untouched so loading does not read as an edit.
func (b *Buffer) SetText(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{Row: 0, Col: 0}
	b.sel = selectionState{}
	b.hist = historyState{}
	b.version++
}

func (b *Buffer) Version() uint64 { return b.version }

// TextVersion counts content-changing edits since the buffer was created.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of bounds.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// End returns the position just past the last rune of the document.
func (b *Buffer) End() Pos {
	last := len(b.lines) - 1
	if last < 0 {
		return Pos{}
	}
	return Pos{Row: last, Col: len(b.lines[last])}
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// (e.g. shift+click behavior) while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if NormalizeRange(Range{Start: next.anchor, End: next.end}).IsEmpty() {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, false
	if next.active {
		nextRange, nextOK = NormalizeRange(Range{Start: next.anchor, End: next.end}), true
	}

	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		b.sel = next
		return
	}

	b.sel = next
	b.version++
}

// SelectAll selects the whole document and parks the cursor at its start.
func (b *Buffer) SelectAll() {
	b.SetSelection(Range{Start: Pos{}, End: b.End()})
	b.SetCursor(Pos{})
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text covered by the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return b.textInRange(r)
}

func (b *Buffer) textInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return string(b.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		start, end := 0, len(b.lines[row])
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = r.End.Col
		}
		sb.WriteString(string(b.lines[row][start:end]))
	}
	return sb.String()
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
