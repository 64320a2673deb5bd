package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether cluster belongs to a word (letters, digits, underscore).
func IsWord(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Width returns the terminal cell width of text, tabs expanded to tabWidth.
func Width(text string, tabWidth int) int {
	if text == "" {
		return 0
	}
	if tabWidth < 1 {
		tabWidth = 4
	}
	w := 0
	for _, cluster := range Split(text) {
		if cluster == "\t" {
			w += tabWidth - w%tabWidth
			continue
		}
		w += clusterWidth(cluster)
	}
	return w
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 && !isZeroWidth(cluster) {
		w = 1
	}
	return w
}

func isZeroWidth(cluster string) bool {
	return strings.TrimFunc(cluster, func(r rune) bool {
		return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf)
	}) == ""
}
