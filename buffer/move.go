package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	} else if !m.Extend && prevSel.active {
		// Collapsing a selection with a plain arrow lands on its edge.
		r := NormalizeRange(Range{Start: prevSel.anchor, End: prevSel.end})
		if !r.IsEmpty() && m.Unit == MoveRune {
			switch m.Dir {
			case DirLeft:
				nextCursor = r.Start
			case DirRight:
				nextCursor = r.End
			}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveRune:
		return b.moveRune(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveRune(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: b.lineLen(p.Row - 1)}
		}
		return p
	case DirRight:
		if p.Col < b.lineLen(p.Row) {
			return Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1, Col: 0}
		}
		return p
	case DirUp:
		return Pos{Row: p.Row - 1, Col: p.Col}
	case DirDown:
		return Pos{Row: p.Row + 1, Col: p.Col}
	default:
		return p
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirLeft:
		cur := p
		for {
			prev := b.moveRune(cur, DirLeft)
			if prev == cur {
				return cur
			}
			if !b.isSpaceAt(prev) {
				cur = prev
				break
			}
			cur = prev
		}
		for {
			prev := b.moveRune(cur, DirLeft)
			if prev == cur || prev.Row != cur.Row {
				return cur
			}
			if b.isWordBoundary(prev, cur) {
				return cur
			}
			cur = prev
		}
	case DirRight:
		cur := p
		for b.isSpaceAt(cur) {
			next := b.moveRune(cur, DirRight)
			if next == cur {
				return cur
			}
			cur = next
		}
		for {
			next := b.moveRune(cur, DirRight)
			if next == cur || next.Row != cur.Row {
				return next
			}
			if b.isWordBoundary(cur, next) {
				return next
			}
			cur = next
		}
	default:
		return p
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row, Col: 0}
	case DirEnd:
		return Pos{Row: p.Row, Col: b.lineLen(p.Row)}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{}
	case DirEnd:
		return b.End()
	default:
		return p
	}
}

// isSpaceAt reports whether the rune at p is whitespace. End-of-line counts
// as whitespace so word motion crosses line boundaries.
func (b *Buffer) isSpaceAt(p Pos) bool {
	if p.Row < 0 || p.Row >= len(b.lines) {
		return false
	}
	line := b.lines[p.Row]
	if p.Col < 0 || p.Col >= len(line) {
		return true
	}
	return unicode.IsSpace(line[p.Col])
}

func (b *Buffer) isWordBoundary(a, c Pos) bool {
	return b.charClassAt(a) != b.charClassAt(c)
}

func (b *Buffer) charClassAt(p Pos) int {
	if p.Row < 0 || p.Row >= len(b.lines) {
		return 0
	}
	line := b.lines[p.Row]
	if p.Col < 0 || p.Col >= len(line) {
		return 0
	}
	r := line[p.Col]
	switch {
	case unicode.IsSpace(r):
		return 0
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return 1
	default:
		return 2
	}
}
