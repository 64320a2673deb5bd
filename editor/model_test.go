package editor

import (
	"strings"
	"testing"

	"github.com/iw2rmb/scribe/buffer"
)

func tenLines() string {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	return strings.Join(lines, "\n")
}

func TestScrollFractions_ShortDocumentFillsView(t *testing.T) {
	m := New(Config{Text: "a\nb"})
	m = m.SetSize(10, 5)

	first, last := m.ScrollFractions()
	if first != 0 || last != 1 {
		t.Fatalf("fractions=(%v,%v), want (0,1)", first, last)
	}
}

func TestScrollFractions_TopOfLongDocument(t *testing.T) {
	m := New(Config{Text: tenLines()})
	m = m.SetSize(10, 5)

	first, last := m.ScrollFractions()
	if first != 0 || last != 0.5 {
		t.Fatalf("fractions=(%v,%v), want (0,0.5)", first, last)
	}
}

func TestScrollToFraction_RoundTrip(t *testing.T) {
	m := New(Config{Text: tenLines()})
	m = m.SetSize(10, 5)

	m = m.ScrollToFraction(0.5)
	if got := m.viewport.YOffset; got != 5 {
		t.Fatalf("offset after moveto 0.5: got %d, want 5", got)
	}
	first, last := m.ScrollFractions()
	if first != 0.5 || last != 1 {
		t.Fatalf("fractions=(%v,%v), want (0.5,1)", first, last)
	}
}

func TestScrollToFraction_ClampsToBottom(t *testing.T) {
	m := New(Config{Text: tenLines()})
	m = m.SetSize(10, 5)

	m = m.ScrollToFraction(1)
	if got := m.viewport.YOffset; got != 5 {
		t.Fatalf("offset after moveto 1.0: got %d, want 5", got)
	}
}

func TestSetHighlights_CopiesAndClears(t *testing.T) {
	m := New(Config{Text: "abc abc"})
	ranges := m.buf.FindAll("abc")
	if len(ranges) != 2 {
		t.Fatalf("FindAll: got %d ranges, want 2", len(ranges))
	}

	m = m.SetHighlights(ranges)
	if got := len(m.Highlights()); got != 2 {
		t.Fatalf("highlights: got %d, want 2", got)
	}

	m = m.ClearHighlights()
	if got := len(m.Highlights()); got != 0 {
		t.Fatalf("highlights after clear: got %d, want 0", got)
	}
}

func TestView_ShowsGutterAndText(t *testing.T) {
	m := New(Config{Text: "alpha\nbeta", ShowLineNums: true, Style: Style{}})
	m = m.SetSize(20, 2)

	view := m.View()
	if !strings.Contains(view, "alpha") {
		t.Fatalf("view missing text:\n%s", view)
	}
	if !strings.Contains(view, "1") || !strings.Contains(view, "2") {
		t.Fatalf("view missing line numbers:\n%s", view)
	}
}

func TestSyncFromBuffer_DirectMutation(t *testing.T) {
	m := New(Config{Text: "abc"})
	m = m.SetSize(10, 2)

	m.Buffer().InsertText("x")
	m, _ = m.Update(struct{}{})
	if !strings.Contains(m.View(), "xabc") {
		t.Fatalf("view not refreshed after direct buffer edit:\n%s", m.View())
	}
}

func TestContentWidth_GutterReservesCells(t *testing.T) {
	m := New(Config{Text: "a", ShowLineNums: true})
	m = m.SetSize(10, 2)
	if got := m.contentWidth(); got != 8 {
		t.Fatalf("contentWidth with gutter: got %d, want 8", got)
	}

	m = m.SetShowLineNums(false)
	if got := m.contentWidth(); got != 10 {
		t.Fatalf("contentWidth without gutter: got %d, want 10", got)
	}
}

func TestScreenToDocPos(t *testing.T) {
	m := New(Config{Text: "alpha\nbeta\ngamma"})
	m = m.SetSize(10, 3)

	tests := []struct {
		x, y int
		want buffer.Pos
	}{
		{0, 0, buffer.Pos{Row: 0, Col: 0}},
		{3, 1, buffer.Pos{Row: 1, Col: 3}},
		{9, 1, buffer.Pos{Row: 1, Col: 4}}, // past end of "beta"
		{0, 9, buffer.Pos{Row: 2, Col: 0}}, // below last line
	}
	for _, tt := range tests {
		if got := m.screenToDocPos(tt.x, tt.y); got != tt.want {
			t.Errorf("screenToDocPos(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
