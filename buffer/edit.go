package buffer

// Do applies op at the cursor. An active selection is passed to the operation
// unless op already carries one. It reports whether the text changed.
func (b *Buffer) Do(op Op) bool {
	if op.Selection.IsEmpty() {
		if s, ok := b.SelectionSpan(); ok {
			op.Selection = s
		}
	}

	before := b.Text()
	caret := b.Offset()
	after, nextCaret := Apply(before, op, caret)
	if after == before {
		return false
	}

	b.replaceAll(before, after, nextCaret, ChangeSourceLocal)
	b.lastChange.Op = op.Kind
	return true
}

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) { b.Do(Insert(s)) }

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() { b.Do(Insert("\n")) }

// Paste inserts s with normalized line endings, replacing the selection.
func (b *Buffer) Paste(s string) { b.Do(PasteReplace(s, Span{})) }

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() { b.Do(DeleteBackward()) }

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() { b.Do(DeleteForward()) }

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if _, ok := b.Selection(); ok {
		b.Do(DeleteBackward())
	}
}

func (b *Buffer) Indent() { b.Do(IndentForward()) }

func (b *Buffer) Outdent() { b.Do(IndentBackward()) }

func (b *Buffer) replaceAll(before, after string, caret int, source ChangeSource) {
	prev := b.snapshot()
	change := b.beginChange(source)

	b.lines = splitLines(after)
	b.cursor = b.PosFromOffset(caret)
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)

	change.edit = diffText(before, after)
	b.commitChange(change)
}
