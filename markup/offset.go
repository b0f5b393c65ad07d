package markup

// Location is a caret position inside a tree: a node and an offset within it.
//
// For text nodes Offset counts runes into Text. For the root and element nodes
// Offset is a child index, as in the DOM.
type Location struct {
	Node   *Node
	Offset int
}

// Range is a selection between two locations, Start before End in document
// order once resolved to linear offsets.
type Range struct {
	Start Location
	End   Location
}

// Collapse returns the empty range at loc.
func Collapse(loc Location) Range {
	return Range{Start: loc, End: loc}
}

func (r Range) IsCollapsed() bool { return r.Start == r.End }

// LinearOffset maps loc to the number of runes of text content that precede it
// in root. It reports false when loc.Node is not part of root.
func LinearOffset(root *Node, loc Location) (int, bool) {
	if root == nil || loc.Node == nil {
		return 0, false
	}

	before := 0
	found := false
	Walk(root, func(n *Node) bool {
		if n == loc.Node {
			found = true
			return false
		}
		before += n.Len()
		return true
	})
	if !found {
		return 0, false
	}

	n := loc.Node
	if n.IsText() {
		return before + clampInt(loc.Offset, 0, n.Len()), true
	}

	idx := clampInt(loc.Offset, 0, len(n.Children))
	for _, c := range n.Children[:idx] {
		before += TextLen(c)
	}
	return before, true
}

// ToLinear maps loc to a linear offset in root. A location that does not belong
// to root resolves to the end of the content.
func ToLinear(root *Node, loc Location) int {
	if off, ok := LinearOffset(root, loc); ok {
		return off
	}
	return TextLen(root)
}

// ToLocation maps a linear offset to the earliest text node whose content
// reaches it. Offsets past the end resolve to the end of the last text node,
// and a tree without text nodes resolves to the root itself at offset 0.
func ToLocation(root *Node, off int) Location {
	if root == nil {
		return Location{}
	}
	if off < 0 {
		off = 0
	}

	var (
		loc   Location
		last  *Node
		found bool
	)
	before := 0
	Walk(root, func(n *Node) bool {
		if !n.IsText() {
			return true
		}
		if before+n.Len() >= off {
			loc = Location{Node: n, Offset: off - before}
			found = true
			return false
		}
		before += n.Len()
		last = n
		return true
	})

	switch {
	case found:
		return loc
	case last != nil:
		return Location{Node: last, Offset: last.Len()}
	default:
		return Location{Node: root}
	}
}

// LinearRange resolves r to ordered linear offsets.
func LinearRange(root *Node, r Range) (start, end int) {
	start = ToLinear(root, r.Start)
	end = ToLinear(root, r.End)
	if end < start {
		start, end = end, start
	}
	return start, end
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
