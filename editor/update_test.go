package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scribe/buffer"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after insert in read-only: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "hello", Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if got := cb.s; got != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "he")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.buf.Text(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "hello" {
		t.Fatalf("text after paste: got %q, want %q", got, "hello")
	}
}

func TestUpdate_SelectAll(t *testing.T) {
	m := New(Config{Text: "one\ntwo"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlA})

	r, ok := m.buf.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	want := buffer.Range{Start: buffer.Pos{}, End: buffer.Pos{Row: 1, Col: 3}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
}

func TestUpdate_PasteNormalizesNewlines(t *testing.T) {
	cb := &memClipboard{s: "a\r\nb\rc"}
	m := New(Config{Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.buf.Text(); got != "a\nb\nc" {
		t.Fatalf("pasted text: got %q, want %q", got, "a\nb\nc")
	}
}

func TestUpdate_ViewportFollowsCursor(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"})
	m = m.SetSize(10, 3)

	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("initial offset: got %d, want 0", got)
	}

	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.viewport.YOffset; got != 3 {
		t.Fatalf("offset after moving to row 5: got %d, want 3", got)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.Blur()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("blurred editor must not edit: got %q", got)
	}
}
