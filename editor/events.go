package editor

// ChangeEvent describes the block after an update.
type ChangeEvent struct {
	Version   uint64
	Language  string
	Offset    int
	Selection struct {
		Start, End int
		Active     bool
	}

	// v0: simplest payload; host can diff if needed.
	Text string
}

func (e ChangeEvent) equal(o ChangeEvent) bool {
	return e.Text == o.Text && e.Language == o.Language && e.Offset == o.Offset && e.Selection == o.Selection
}

func buildChangeEvent(m *Model) ChangeEvent {
	ev := ChangeEvent{
		Version:  m.block.Buffer().Version(),
		Language: m.block.Language(),
		Text:     m.block.Text(),
	}
	_, ev.Offset = m.caret()
	if start, end, ok := m.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Start, ev.Selection.End = start, end
	}
	return ev
}
