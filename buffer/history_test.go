package buffer

import "testing"

func TestUndoRedo_Basic(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.InsertText("b")
	if got := b.Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}

	if !b.Undo() {
		t.Fatalf("undo should succeed")
	}
	if got := b.Text(); got != "a" {
		t.Fatalf("text after undo=%q, want %q", got, "a")
	}

	if !b.Redo() {
		t.Fatalf("redo should succeed")
	}
	if got := b.Text(); got != "ab" {
		t.Fatalf("text after redo=%q, want %q", got, "ab")
	}
}

func TestUndoRedo_EmptyHistoryIsNoOp(t *testing.T) {
	b := New("stable", Options{})
	if b.Undo() {
		t.Fatalf("undo with empty history must report false")
	}
	if b.Redo() {
		t.Fatalf("redo with empty history must report false")
	}
	if got := b.Text(); got != "stable" {
		t.Fatalf("text=%q, want %q", got, "stable")
	}
}

func TestUndo_RestoresCursor(t *testing.T) {
	b := New("abc", Options{})
	b.SetCursor(Pos{Col: 3})
	b.InsertText("d")
	b.Undo()

	if got := b.Cursor(); got != (Pos{Col: 3}) {
		t.Fatalf("cursor=%v, want (0,3)", got)
	}
}

func TestUndo_BumpsTextVersion(t *testing.T) {
	b := New("", Options{})
	b.InsertText("x")
	tv := b.TextVersion()

	b.Undo()
	if b.TextVersion() == tv {
		t.Fatalf("undo that changes text must bump text version")
	}
}

func TestHistory_Limit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("1")
	b.InsertText("2")
	b.InsertText("3")

	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undos available")
	}
	if b.Undo() {
		t.Fatalf("history limit of 2 must cap undo depth")
	}
	if got := b.Text(); got != "1" {
		t.Fatalf("text=%q, want %q", got, "1")
	}
}

func TestEdit_ClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected redo available after undo")
	}

	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("new edit must clear redo history")
	}
}
