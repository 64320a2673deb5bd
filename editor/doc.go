// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, the optional line-number gutter, search
// highlights, and clipboard integration.
package editor
