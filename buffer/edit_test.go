package buffer

import "testing"

func TestInsertText_AtCursor(t *testing.T) {
	b := New("ad", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.InsertText("bc")

	if got := b.Text(); got != "abcd" {
		t.Fatalf("text=%q, want %q", got, "abcd")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor=%v, want (0,3)", got)
	}
	if b.TextVersion() != 1 {
		t.Fatalf("text version=%d, want 1", b.TextVersion())
	}
}

func TestInsertText_Multiline(t *testing.T) {
	b := New("xy", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.InsertText("1\n2\n3")

	if got := b.Text(); got != "x1\n2\n3y" {
		t.Fatalf("text=%q, want %q", got, "x1\n2\n3y")
	}
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 1}) {
		t.Fatalf("cursor=%v, want (2,1)", got)
	}
}

func TestInsertText_ReplacesSelection(t *testing.T) {
	b := New("hello world", Options{})
	b.SetSelection(Range{Start: Pos{Col: 0}, End: Pos{Col: 5}})
	b.InsertText("bye")

	if got := b.Text(); got != "bye world" {
		t.Fatalf("text=%q, want %q", got, "bye world")
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared after replace")
	}
}

func TestDeleteBackward(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		cursor     Pos
		wantText   string
		wantCursor Pos
	}{
		{name: "mid line", text: "abc", cursor: Pos{Col: 2}, wantText: "ac", wantCursor: Pos{Col: 1}},
		{name: "joins lines", text: "a\nb", cursor: Pos{Row: 1, Col: 0}, wantText: "ab", wantCursor: Pos{Col: 1}},
		{name: "doc start no-op", text: "a", cursor: Pos{}, wantText: "a", wantCursor: Pos{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text, Options{})
			b.SetCursor(tc.cursor)
			b.DeleteBackward()
			if got := b.Text(); got != tc.wantText {
				t.Fatalf("text=%q, want %q", got, tc.wantText)
			}
			if got := b.Cursor(); got != tc.wantCursor {
				t.Fatalf("cursor=%v, want %v", got, tc.wantCursor)
			}
		})
	}
}

func TestDeleteForward(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		cursor   Pos
		wantText string
	}{
		{name: "mid line", text: "abc", cursor: Pos{Col: 1}, wantText: "ac"},
		{name: "joins lines", text: "a\nb", cursor: Pos{Row: 0, Col: 1}, wantText: "ab"},
		{name: "doc end no-op", text: "a", cursor: Pos{Col: 1}, wantText: "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text, Options{})
			b.SetCursor(tc.cursor)
			b.DeleteForward()
			if got := b.Text(); got != tc.wantText {
				t.Fatalf("text=%q, want %q", got, tc.wantText)
			}
		})
	}
}

func TestDeleteSelection_SpansLines(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 2}, End: Pos{Row: 2, Col: 3}})
	b.DeleteSelection()

	if got := b.Text(); got != "onee" {
		t.Fatalf("text=%q, want %q", got, "onee")
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}
}
