package buffer

// FindAll returns every non-overlapping occurrence of needle in the document,
// case-sensitive, scanning from the start. The needle is matched literally
// (no patterns) and may span lines when it contains '\n'.
func (b *Buffer) FindAll(needle string) []Range {
	n := []rune(needle)
	if len(n) == 0 {
		return nil
	}

	text := []rune(b.Text())
	if len(n) > len(text) {
		return nil
	}

	var out []Range
	for i := 0; i+len(n) <= len(text); {
		if !runesEqual(text[i:i+len(n)], n) {
			i++
			continue
		}
		out = append(out, Range{
			Start: b.posForOffset(i),
			End:   b.posForOffset(i + len(n)),
		})
		i += len(n)
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// posForOffset maps a rune offset into the joined text ('\n'-separated lines)
// to a document position.
func (b *Buffer) posForOffset(off int) Pos {
	row := 0
	for row < len(b.lines) {
		lineLen := len(b.lines[row])
		if off <= lineLen {
			return Pos{Row: row, Col: off}
		}
		off -= lineLen + 1 // account for the newline
		row++
	}
	return b.End()
}
