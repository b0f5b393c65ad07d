// Package markup models the rendered content of a code block as an immutable
// tree of element and text nodes, and maps caret locations inside that tree to
// linear rune offsets into the block's plain text and back.
//
// Trees are snapshots: once built they are never mutated. Re-rendering a block
// produces a new root, and any Location taken from an older root is stale.
package markup
