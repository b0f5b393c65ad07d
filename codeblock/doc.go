// Package codeblock implements an editable, syntax-highlighted code block
// whose caret survives every re-highlight.
//
// A Block owns the plain text and the language. Every editing signal runs
// the same pipeline: read the surface selection, translate it to linear
// offsets, apply one buffer operation, re-render the markup, swap the
// surface root, and restore the caret at the new linear offset.
//
// The host supplies the editing Surface, an optional Clipboard and an
// optional Notifier. MemorySurface is the in-memory surface used by the
// terminal editor and by tests.
package codeblock
