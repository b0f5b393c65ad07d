package editor

// screenToOffset maps screen coordinates to a rune offset.
//
// Coordinates are in terminal cells relative to the editor's top-left corner.
// Gutter clicks map to the line start; x/y are clamped into the text.
func (m *Model) screenToOffset(x, y int) int {
	row := m.viewport.YOffset + y - m.bodyTop()
	return m.layout.offsetAt(row, x-m.gutterWidth())
}

// offsetToScreen maps a rune offset to screen coordinates.
//
// ok is false when the offset is scrolled out of view.
func (m *Model) offsetToScreen(off int) (x, y int, ok bool) {
	row := m.layout.lineOf(off)
	x = m.gutterWidth() + m.layout.cellX(row, off)
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.viewport.Height {
		return x, y + m.bodyTop(), false
	}
	if m.viewport.Width > 0 && x >= m.viewport.Width {
		return x, y + m.bodyTop(), false
	}
	return x, y + m.bodyTop(), true
}
