package buffer

import "testing"

func TestMove_RuneAcrossLines(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}

	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("right wraps to next line: cursor=%v", got)
	}

	b.Move(Move{Unit: MoveRune, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("left wraps to previous line end: cursor=%v", got)
	}
}

func TestMove_UpDownClampsCol(t *testing.T) {
	b := New("long line\nab", Options{})
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})

	b.Move(Move{Unit: MoveRune, Dir: DirDown})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("down clamps to shorter line: cursor=%v", got)
	}
}

func TestMove_ExtendBuildsSelection(t *testing.T) {
	b := New("hello", Options{})
	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveRune, Dir: DirRight, Extend: true})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := Range{Start: Pos{}, End: Pos{Col: 2}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}

	// Plain movement collapses the selection.
	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move must clear selection")
	}
}

func TestMove_WordRight(t *testing.T) {
	b := New("foo  bar.baz", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Col: 3}) {
		t.Fatalf("word right from start: cursor=%v, want col 3", got)
	}

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != (Pos{Col: 8}) {
		t.Fatalf("word right over spaces: cursor=%v, want col 8", got)
	}
}

func TestMove_WordLeft(t *testing.T) {
	b := New("foo bar", Options{})
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})

	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Col: 4}) {
		t.Fatalf("word left from end: cursor=%v, want col 4", got)
	}
}

func TestMove_DocHomeEnd(t *testing.T) {
	b := New("a\nbb\nccc", Options{})

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 3}) {
		t.Fatalf("doc end: cursor=%v, want (2,3)", got)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("doc home: cursor=%v, want (0,0)", got)
	}
}
