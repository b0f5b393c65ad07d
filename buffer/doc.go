// Package buffer implements the plain-text model of a code block.
//
// Text is rune-accurate. Positions are 0-based (Row, Col) in runes, and linear
// offsets count runes from the start of the text with '\n' as one rune.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// Apply is the pure content mutator; Buffer layers caret, selection, history
// and change reporting on top of it.
package buffer
