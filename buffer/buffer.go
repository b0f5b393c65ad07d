package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the plain-text state of a block: text, cursor, and selection.
type Buffer struct {
	lines   [][]rune
	version uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Len returns the rune length of Text.
func (b *Buffer) Len() int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		total += len(line)
	}
	return total
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Offset returns the cursor as a linear rune offset.
func (b *Buffer) Offset() int { return b.OffsetFromPos(b.cursor) }

// SetOffset moves the cursor to a linear rune offset, clamped into the text.
func (b *Buffer) SetOffset(off int) {
	b.SetCursor(b.PosFromOffset(off))
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the selection without normalizing it: Start is the
// anchor and End is the end that moves.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SelectionSpan returns the active selection in linear offsets.
func (b *Buffer) SelectionSpan() (Span, bool) {
	r, ok := b.Selection()
	if !ok {
		return Span{}, false
	}
	return Span{Start: b.OffsetFromPos(r.Start), End: b.OffsetFromPos(r.End)}, true
}

func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) {
		return
	}
	b.sel = next
	b.version++
}

// SetSelectionSpan selects s; the cursor moves to its end.
func (b *Buffer) SetSelectionSpan(s Span) {
	r := Range{Start: b.PosFromOffset(s.Start), End: b.PosFromOffset(s.End)}
	b.SetSelection(r)
	b.SetCursor(r.End)
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SetText replaces the whole text, keeping the cursor at the same linear
// offset where possible. It is recorded in history like any other edit.
func (b *Buffer) SetText(text string) {
	cur := b.Text()
	if cur == text {
		return
	}
	off := b.Offset()
	b.replaceAll(cur, text, off, ChangeSourceHost)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}
