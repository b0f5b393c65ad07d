package codeblock

import "github.com/iw2rmb/codeplus/markup"

// Restore places a collapsed caret at linear offset off of root, which must
// be the tree just installed on s.
func Restore(s Surface, root *markup.Node, off int) {
	s.Collapse(markup.ToLocation(root, off))
}
