package buffer

type bufferSnapshot struct {
	text   string
	cursor int
	sel    Span
	hasSel bool
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	s := bufferSnapshot{text: b.Text(), cursor: b.Offset()}
	s.sel, s.hasSel = b.SelectionSpan()
	return s
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.PosFromOffset(s.cursor)
	b.sel = selectionState{}
	if s.hasSel {
		anchor := b.PosFromOffset(s.sel.Start)
		end := b.PosFromOffset(s.sel.End)
		if anchor != end {
			b.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	change.edit = diffText(cur.text, prev.text)
	b.commitChange(change)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	change.edit = diffText(cur.text, next.text)
	b.commitChange(change)
	return true
}

// Checkpoint is the complete buffer state, history included, at one point
// in time. It is only meaningful for the buffer that produced it.
type Checkpoint struct {
	state      bufferSnapshot
	undo, redo []bufferSnapshot
	last       Change
	hasLast    bool
}

// Checkpoint captures the buffer so a failed edit can be rolled back with
// Rollback.
func (b *Buffer) Checkpoint() Checkpoint {
	return Checkpoint{
		state:   b.snapshot(),
		undo:    append([]bufferSnapshot(nil), b.hist.undo...),
		redo:    append([]bufferSnapshot(nil), b.hist.redo...),
		last:    b.lastChange,
		hasLast: b.hasLastChange,
	}
}

// Rollback returns the buffer to cp without recording history: undo and redo
// stacks, text, caret and selection are those of the checkpoint. The version
// still advances when the text differs, so observers never see one version
// with two texts.
func (b *Buffer) Rollback(cp Checkpoint) {
	changed := b.Text() != cp.state.text
	b.restore(cp.state)
	b.hist.undo = append([]bufferSnapshot(nil), cp.undo...)
	b.hist.redo = append([]bufferSnapshot(nil), cp.redo...)
	b.lastChange, b.hasLastChange = cp.last, cp.hasLast
	if changed {
		b.version++
	}
}
