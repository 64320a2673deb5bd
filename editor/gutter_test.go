package editor

import "testing"

func TestLineNumberWidth(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{1, 2},
		{9, 2},
		{10, 3},
		{99, 3},
		{100, 4},
	}
	for _, tt := range tests {
		if got := lineNumberWidth(tt.lines); got != tt.want {
			t.Errorf("lineNumberWidth(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestGutterText(t *testing.T) {
	if got, want := GutterText(5), "1\n2\n3\n4\n5"; got != want {
		t.Fatalf("GutterText(5) = %q, want %q", got, want)
	}
	if got, want := GutterText(1), "1"; got != want {
		t.Fatalf("GutterText(1) = %q, want %q", got, want)
	}
}
