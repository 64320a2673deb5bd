package app

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/scribe/internal/grapheme"
)

// statusText builds the status line for a document: cursor position
// (1-based), whitespace-delimited word count, and the character count of
// the exact buffer text.
func statusText(d *Document) string {
	buf := d.ed.Buffer()
	cur := buf.Cursor()
	text := buf.Text()
	words := len(strings.Fields(text))
	chars := grapheme.Count(text)
	return fmt.Sprintf("Line %d, Col %d  |  %d words  |  %d characters",
		cur.Row+1, cur.Col+1, words, chars)
}
