package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeplus/highlight"
	"github.com/iw2rmb/codeplus/markup"
)

// layoutLine is one logical line of the block text.
type layoutLine struct {
	Start, End int // rune offsets; End excludes the newline
	Cells      []graphemeCell
	Width      int
}

// layout is the drawn form of a content tree: lines of cells plus the style
// of every text node, indexed by graphemeCell.Run.
type layout struct {
	root   *markup.Node
	lines  []layoutLine
	styles []lipgloss.Style
}

// buildLayout flattens root into lines. A text node takes the theme style of
// its innermost classed ancestor.
func buildLayout(root *markup.Node, theme highlight.Theme, tabWidth int) layout {
	l := layout{root: root, lines: []layoutLine{{}}}
	off := 0

	var visit func(n *markup.Node, classes []string)
	visit = func(n *markup.Node, classes []string) {
		if n == nil {
			return
		}
		if n.IsText() {
			l.styles = append(l.styles, theme.StyleFor(classes...))
			run := len(l.styles) - 1
			for i, part := range splitNewlines(n.Text) {
				if i > 0 {
					cur := &l.lines[len(l.lines)-1]
					cur.End = off
					off++
					l.lines = append(l.lines, layoutLine{Start: off})
				}
				if part == "" {
					continue
				}
				cur := &l.lines[len(l.lines)-1]
				cells := splitCells(part, off, cur.Width, tabWidth, run)
				for _, c := range cells {
					cur.Width += c.Width
					off += c.Runes
				}
				cur.Cells = append(cur.Cells, cells...)
			}
			return
		}
		if len(n.Classes) > 0 {
			classes = append(append([]string(nil), n.Classes...), classes...)
		}
		for _, c := range n.Children {
			visit(c, classes)
		}
	}
	visit(root, nil)

	l.lines[len(l.lines)-1].End = off
	return l
}

func splitNewlines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// lineOf returns the index of the line holding offset off.
func (l layout) lineOf(off int) int {
	for i, ln := range l.lines {
		if off <= ln.End {
			return i
		}
	}
	return len(l.lines) - 1
}

// cellX returns the visual column of offset off within line row.
func (l layout) cellX(row, off int) int {
	if row < 0 || row >= len(l.lines) {
		return 0
	}
	x := 0
	for _, c := range l.lines[row].Cells {
		if off < c.Offset+c.Runes {
			return x
		}
		x += c.Width
	}
	return x
}

// offsetAt maps a visual column of line row back to a rune offset. Columns
// past the end of the line map to its end.
func (l layout) offsetAt(row, x int) int {
	if len(l.lines) == 0 {
		return 0
	}
	row = clampInt(row, 0, len(l.lines)-1)
	ln := l.lines[row]
	if x <= 0 {
		return ln.Start
	}
	acc := 0
	for _, c := range ln.Cells {
		if x < acc+c.Width {
			return c.Offset
		}
		acc += c.Width
	}
	return ln.End
}

// bodyHeight is the number of content rows shown: the resize limit, capped
// by the space the terminal leaves after the chrome.
func (m *Model) bodyHeight() int {
	h := m.block.Resizer().Visible()
	if h < 1 {
		h = 1
	}
	if m.height > 0 {
		avail := m.height - m.chromeHeight()
		if avail < 1 {
			avail = 1
		}
		if h > avail {
			h = avail
		}
	}
	return h
}

// chromeHeight counts the toolbar and footer rows.
func (m *Model) chromeHeight() int {
	n := 1 // footer
	if m.hasToolbar() {
		n++
	}
	return n
}

func (m *Model) hasToolbar() bool {
	f := m.block.Features()
	return f.LanguageMenu || f.CopyButton
}

// bodyTop is the screen row of the first content row.
func (m *Model) bodyTop() int {
	if m.hasToolbar() {
		return 1
	}
	return 0
}

func (m *Model) resizeViewport() {
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
}

// followCursor scrolls the viewport so the caret row is visible.
func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	_, focus := m.caret()
	row := m.layout.lineOf(focus)

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
