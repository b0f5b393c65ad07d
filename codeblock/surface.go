package codeblock

import "github.com/iw2rmb/codeplus/markup"

// Surface is the editing surface the block renders into.
//
// Selection reports false when the surface has no selection (for example
// when it is not focused). Collapse places a collapsed caret. A location
// whose node is not under the current root must be treated as the end of
// the content.
type Surface interface {
	Selection() (markup.Range, bool)
	Collapse(loc markup.Location)
	Root() *markup.Node
	SetRoot(root *markup.Node)
}

// Clipboard provides clipboard integration.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Notifier shows a user-facing message.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// MemorySurface is an in-memory Surface.
type MemorySurface struct {
	root   *markup.Node
	sel    markup.Range
	hasSel bool
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{root: markup.Root()}
}

func (s *MemorySurface) Root() *markup.Node { return s.root }

// SetRoot swaps the content tree. The selection is dropped because its nodes
// belong to the previous tree.
func (s *MemorySurface) SetRoot(root *markup.Node) {
	if root == nil {
		root = markup.Root()
	}
	s.root = root
	s.hasSel = false
}

func (s *MemorySurface) Selection() (markup.Range, bool) {
	return s.sel, s.hasSel
}

// Select sets a possibly non-collapsed selection. Locations outside the
// current tree resolve to the end of the content.
func (s *MemorySurface) Select(r markup.Range) {
	s.sel = markup.Range{Start: s.resolve(r.Start), End: s.resolve(r.End)}
	s.hasSel = true
}

func (s *MemorySurface) Collapse(loc markup.Location) {
	s.Select(markup.Collapse(loc))
}

// SelectOffsets selects the linear range [start, end) of the current tree.
func (s *MemorySurface) SelectOffsets(start, end int) {
	s.Select(markup.Range{
		Start: markup.ToLocation(s.root, start),
		End:   markup.ToLocation(s.root, end),
	})
}

// Blur drops the selection.
func (s *MemorySurface) Blur() { s.hasSel = false }

// CaretOffset returns the linear offset of the selection end.
func (s *MemorySurface) CaretOffset() (int, bool) {
	if !s.hasSel {
		return 0, false
	}
	return markup.ToLinear(s.root, s.sel.End), true
}

func (s *MemorySurface) resolve(loc markup.Location) markup.Location {
	if loc.Node == nil || !markup.Contains(s.root, loc.Node) {
		return markup.ToLocation(s.root, markup.TextLen(s.root))
	}
	return loc
}
