package codeblock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iw2rmb/codeplus/markup"
)

func TestComposition_Filter(t *testing.T) {
	t.Parallel()

	var c composition
	text, drop := c.filter(Input("a"))
	assert.Equal(t, "a", text)
	assert.False(t, drop)

	_, drop = c.filter(CompositionStart())
	assert.True(t, drop)
	_, drop = c.filter(Tab())
	assert.True(t, drop, "keys belong to the IME while composing")

	text, drop = c.filter(CompositionEnd("日本"))
	assert.Equal(t, "日本", text)
	assert.False(t, drop)
	assert.Equal(t, JustCommitted, c.state)

	_, drop = c.filter(Tab())
	assert.False(t, drop)
	assert.Equal(t, NotComposing, c.state)
}

func TestComposition_EmptyCommit(t *testing.T) {
	t.Parallel()

	var c composition
	c.filter(CompositionStart())
	_, drop := c.filter(CompositionEnd(""))
	assert.True(t, drop)
}

func TestComposition_RestartAfterCommit(t *testing.T) {
	t.Parallel()

	var c composition
	c.filter(CompositionStart())
	c.filter(CompositionEnd("日"))

	_, drop := c.filter(CompositionStart())
	assert.True(t, drop)
	assert.Equal(t, Composing, c.state)
	_, drop = c.filter(CompositionUpdate("本"))
	assert.True(t, drop)

	text, drop := c.filter(CompositionEnd("本"))
	assert.Equal(t, "本", text)
	assert.False(t, drop)
	_, drop = c.filter(Input("本"))
	assert.True(t, drop, "the committed text echo is swallowed")
}

func TestSignal_IsComposition(t *testing.T) {
	t.Parallel()

	for _, sig := range []Signal{CompositionStart(), CompositionUpdate("x"), CompositionEnd("x")} {
		assert.True(t, sig.isComposition(), sig.Kind.String())
	}
	for _, sig := range []Signal{Input("x"), Tab(), Backspace(), Undo()} {
		assert.False(t, sig.isComposition(), sig.Kind.String())
	}
}

func TestMemorySurface_StaleLocationResolvesToEnd(t *testing.T) {
	t.Parallel()

	s := NewMemorySurface()
	s.SetRoot(markup.Root(markup.TextNode("ab"), markup.TextNode("cd")))

	stale := markup.TextNode("zz")
	s.Collapse(markup.Location{Node: stale, Offset: 1})

	off, ok := s.CaretOffset()
	assert.True(t, ok)
	assert.Equal(t, 4, off)
}

func TestRestore_UsesNewTree(t *testing.T) {
	t.Parallel()

	s := NewMemorySurface()
	old := markup.Root(markup.TextNode("abc"))
	s.SetRoot(old)
	s.SelectOffsets(2, 2)

	next := markup.Root(
		markup.Element("span", []string{"k"}, markup.TextNode("ab")),
		markup.TextNode("cd"),
	)
	s.SetRoot(next)
	_, ok := s.Selection()
	assert.False(t, ok, "SetRoot drops the old selection")

	Restore(s, next, 3)
	r, ok := s.Selection()
	assert.True(t, ok)
	assert.True(t, r.IsCollapsed())
	assert.Equal(t, "cd", r.End.Node.Text)
	assert.Equal(t, 1, r.End.Offset)
}

func TestSignalKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shift-tab", SignalShiftTab.String())
	assert.Equal(t, "unknown", SignalKind(200).String())
	assert.Equal(t, "rendered", StateRendered.String())
	assert.Equal(t, "just-committed", JustCommitted.String())
}
