// Package buffer implements the pure, rune-accurate document model for scribe.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open selections in document coordinates: [Start, End).
package buffer
