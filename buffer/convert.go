package buffer

// OffsetFromPos converts pos to a linear rune offset. pos is clamped into the
// document first.
func (b *Buffer) OffsetFromPos(pos Pos) int {
	pos = b.clampPos(pos)
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + pos.Col
}

// PosFromOffset converts a linear rune offset to a position. Offsets outside
// [0, Len()] are clamped.
func (b *Buffer) PosFromOffset(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1
	}
	lastRow := len(b.lines) - 1
	return Pos{Row: lastRow, Col: len(b.lines[lastRow])}
}

// PosInText converts a linear rune offset into a position within text without
// building a Buffer.
func PosInText(text string, off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	row, col := 0, 0
	for _, r := range text {
		if off == 0 {
			break
		}
		off--
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return Pos{Row: row, Col: col}
}
