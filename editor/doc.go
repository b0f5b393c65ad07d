// Package editor provides a Bubble Tea component that hosts one
// codeblock.Block in the terminal.
//
// The package is responsible for key and mouse input, viewport behavior,
// grapheme-aware rendering of the highlighted content tree, and the block
// chrome: language menu, copy button, resize handle, and status line.
package editor
