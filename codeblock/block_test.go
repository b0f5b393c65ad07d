package codeblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/highlight"
	"github.com/iw2rmb/codeplus/markup"
)

func TestHandle_TypingKeepsCaretAfterEachChar(t *testing.T) {
	t.Parallel()

	b, s := newBlock("", "Python")
	require.NoError(t, b.Handle(codeblock.Input("a")))
	require.NoError(t, b.Handle(codeblock.Input("b")))
	assert.Equal(t, 2, caret(s))

	require.NoError(t, b.Handle(codeblock.Input("c")))
	assert.Equal(t, "abc", b.Text())
	assert.Equal(t, 3, caret(s))
	assert.Equal(t, codeblock.StateIdle, b.State())
}

func TestHandle_PasteNormalizesCRLF(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{text: "x\r\ny"}
	s := codeblock.NewMemorySurface()
	b := codeblock.New(codeblock.Options{Surface: s, Clipboard: clip})

	require.NoError(t, b.Handle(codeblock.Paste()))
	assert.Equal(t, "x\ny", b.Text())
	assert.Equal(t, 3, caret(s))
}

func TestHandle_PasteReplacesSelection(t *testing.T) {
	t.Parallel()

	b, s := newBlock("hello", "Go")
	s.SelectOffsets(1, 4)

	require.NoError(t, b.Handle(codeblock.PasteText("EY")))
	assert.Equal(t, "hEYo", b.Text())
	assert.Equal(t, 3, caret(s))
}

func TestHandle_InputReplacesSelection(t *testing.T) {
	t.Parallel()

	b, s := newBlock("hello", highlight.PlainText)
	s.SelectOffsets(4, 1)

	require.NoError(t, b.Handle(codeblock.Input("X")))
	assert.Equal(t, "hXo", b.Text())
	assert.Equal(t, 2, caret(s))
}

func TestHandle_CaretSurvivesTokenBoundaries(t *testing.T) {
	t.Parallel()

	b, s := newBlock("a=1", "Python")
	require.True(t, b.Markup().Highlighted)
	require.Greater(t, len(markup.TextNodes(b.Root())), 1)

	s.SelectOffsets(1, 1)
	require.NoError(t, b.Handle(codeblock.Input(" ")))
	assert.Equal(t, "a =1", b.Text())
	assert.Equal(t, 2, caret(s))

	require.NoError(t, b.Handle(codeblock.Newline()))
	assert.Equal(t, "a \n=1", b.Text())
	assert.Equal(t, 3, caret(s))
	assert.Equal(t, b.Text(), markup.Text(b.Root()))
}

func TestSetLanguage_SwitchToPlainKeepsText(t *testing.T) {
	t.Parallel()

	b, s := newBlock("a=1", "Python")
	s.SelectOffsets(2, 2)

	require.NoError(t, b.SetLanguage("Plain Text"))
	assert.Equal(t, "a=1", b.Text())
	assert.False(t, b.Markup().Highlighted)
	assert.Len(t, markup.TextNodes(b.Root()), 1)
	assert.Equal(t, 2, caret(s))
}

func TestHandle_TabShiftTabRoundTrip(t *testing.T) {
	t.Parallel()

	b, s := newBlock("x\ny", "Go")
	s.SelectOffsets(2, 2)

	require.NoError(t, b.Handle(codeblock.Tab()))
	assert.Equal(t, "x\n  y", b.Text())
	assert.Equal(t, 4, caret(s))

	require.NoError(t, b.Handle(codeblock.ShiftTab()))
	assert.Equal(t, "x\ny", b.Text())
	assert.Equal(t, 2, caret(s))

	// Without a leading indent, un-indent is a no-op.
	require.NoError(t, b.Handle(codeblock.ShiftTab()))
	assert.Equal(t, "x\ny", b.Text())
	assert.Equal(t, 2, caret(s))
}

func TestHandle_DeleteBoundaries(t *testing.T) {
	t.Parallel()

	b, s := newBlock("ab", highlight.PlainText)
	s.SelectOffsets(0, 0)
	require.NoError(t, b.Handle(codeblock.Backspace()))
	assert.Equal(t, "ab", b.Text())

	s.SelectOffsets(2, 2)
	require.NoError(t, b.Handle(codeblock.Delete()))
	assert.Equal(t, "ab", b.Text())

	require.NoError(t, b.Handle(codeblock.Backspace()))
	assert.Equal(t, "a", b.Text())
	assert.Equal(t, 1, caret(s))

	s.SelectOffsets(0, 0)
	require.NoError(t, b.Handle(codeblock.Delete()))
	assert.Equal(t, "", b.Text())
	assert.True(t, b.ShowPlaceholder())
}

func TestHandle_PasteWithoutClipboardNotifies(t *testing.T) {
	t.Parallel()

	notes := &recordingNotifier{}
	b := codeblock.New(codeblock.Options{
		Data:     codeblock.Data{Code: "keep"},
		Notifier: notes,
	})

	err := b.Handle(codeblock.Paste())
	require.ErrorIs(t, err, codeblock.ErrClipboardUnavailable)
	assert.Equal(t, []string{codeblock.PasteUnsupportedMessage}, notes.messages)
	assert.Equal(t, "keep", b.Text())
	assert.Equal(t, codeblock.StateIdle, b.State())
}

func TestHandle_ClipboardReadErrorIsWrapped(t *testing.T) {
	t.Parallel()

	readErr := assert.AnError
	notes := &recordingNotifier{}
	b := codeblock.New(codeblock.Options{
		Clipboard: &fakeClipboard{readErr: readErr},
		Notifier:  notes,
	})

	err := b.Handle(codeblock.Paste())
	require.ErrorIs(t, err, codeblock.ErrClipboardUnavailable)
	require.ErrorIs(t, err, readErr)
	assert.Len(t, notes.messages, 1)
}

func TestHandle_CompositionInsertsCommitOnce(t *testing.T) {
	t.Parallel()

	b, s := newBlock("", highlight.PlainText)

	require.NoError(t, b.Handle(codeblock.CompositionStart()))
	assert.Equal(t, codeblock.Composing, b.Composition())
	require.NoError(t, b.Handle(codeblock.CompositionUpdate("n")))
	require.NoError(t, b.Handle(codeblock.Input("n")))
	require.NoError(t, b.Handle(codeblock.CompositionUpdate("ni")))
	require.NoError(t, b.Handle(codeblock.Backspace()))
	assert.Equal(t, "", b.Text())

	require.NoError(t, b.Handle(codeblock.CompositionEnd("你")))
	assert.Equal(t, "你", b.Text())
	assert.Equal(t, codeblock.JustCommitted, b.Composition())

	// The echoed input of the commit is swallowed.
	require.NoError(t, b.Handle(codeblock.Input("你")))
	assert.Equal(t, "你", b.Text())
	assert.Equal(t, codeblock.NotComposing, b.Composition())

	require.NoError(t, b.Handle(codeblock.Input("a")))
	assert.Equal(t, "你a", b.Text())
	assert.Equal(t, 2, caret(s))
}

func TestHandle_CommitFollowedByOtherInput(t *testing.T) {
	t.Parallel()

	b, _ := newBlock("", highlight.PlainText)
	require.NoError(t, b.Handle(codeblock.CompositionStart()))
	require.NoError(t, b.Handle(codeblock.CompositionEnd("é")))
	require.NoError(t, b.Handle(codeblock.Input("x")))
	assert.Equal(t, "éx", b.Text())
}

func TestHandle_ReadOnlyIgnoresSignals(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	b := codeblock.New(codeblock.Options{
		Data:      codeblock.Data{Code: "fixed", Language: "Go"},
		Host:      codeblock.Host{ReadOnly: true},
		Clipboard: clip,
	})

	require.NoError(t, b.Handle(codeblock.Input("x")))
	require.NoError(t, b.Handle(codeblock.Backspace()))
	assert.Equal(t, "fixed", b.Text())
	require.ErrorIs(t, b.SetLanguage("Python"), codeblock.ErrReadOnly)
	require.ErrorIs(t, b.OnPaste("pre", "<pre>x</pre>"), codeblock.ErrReadOnly)

	ok, err := b.Copy()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"fixed"}, clip.writes)
}

func TestHandle_TransitionsRunToIdle(t *testing.T) {
	t.Parallel()

	var seen []codeblock.State
	b := codeblock.New(codeblock.Options{
		OnTransition: func(_, to codeblock.State) { seen = append(seen, to) },
	})

	require.NoError(t, b.Handle(codeblock.Input("x")))
	assert.Equal(t, []codeblock.State{
		codeblock.StateCapturing,
		codeblock.StateMutated,
		codeblock.StateRendered,
		codeblock.StateIdle,
	}, seen)

	seen = nil
	require.NoError(t, b.Handle(codeblock.Delete()))
	assert.Equal(t, []codeblock.State{codeblock.StateCapturing, codeblock.StateIdle}, seen)
}

func TestHandle_RecoversFromSurfacePanic(t *testing.T) {
	t.Parallel()

	s := &panickySurface{MemorySurface: codeblock.NewMemorySurface()}
	b := codeblock.New(codeblock.Options{
		Data:    codeblock.Data{Code: "ok"},
		Surface: s,
	})
	s.armed = true

	err := b.Handle(codeblock.Input("!"))
	require.ErrorIs(t, err, codeblock.ErrPipeline)
	assert.Equal(t, "ok", b.Text())
	assert.Equal(t, codeblock.StateIdle, b.State())
}

func TestHandle_FailedEditLeavesHistoryIntact(t *testing.T) {
	t.Parallel()

	s := &panickySurface{MemorySurface: codeblock.NewMemorySurface()}
	b := codeblock.New(codeblock.Options{Surface: s})
	require.NoError(t, b.Handle(codeblock.Input("a")))
	require.NoError(t, b.Handle(codeblock.Input("b")))

	s.armed = true
	err := b.Handle(codeblock.Input("X"))
	require.ErrorIs(t, err, codeblock.ErrPipeline)
	assert.Equal(t, "ab", b.Text())

	s.armed = false
	require.NoError(t, b.Handle(codeblock.Undo()))
	assert.Equal(t, "a", b.Text())
	assert.Equal(t, 1, caret(s.MemorySurface))
}

func TestHandle_FailedRestoreResyncsMarkupAndRoot(t *testing.T) {
	t.Parallel()

	s := &panickySurface{MemorySurface: codeblock.NewMemorySurface()}
	b := codeblock.New(codeblock.Options{Surface: s})
	require.NoError(t, b.Handle(codeblock.Input("ab")))

	s.armedCollapse = true
	err := b.Handle(codeblock.Input("X"))
	require.ErrorIs(t, err, codeblock.ErrPipeline)
	assert.Equal(t, "ab", b.Text())
	assert.Equal(t, "ab", b.Markup().Source)
	assert.Equal(t, "ab", markup.Text(b.Root()))

	s.armedCollapse = false
	require.NoError(t, b.Handle(codeblock.Undo()))
	assert.Equal(t, "", b.Text())
}

func TestHandle_UndoRedo(t *testing.T) {
	t.Parallel()

	b, s := newBlock("", "Go")
	require.NoError(t, b.Handle(codeblock.Input("a")))
	require.NoError(t, b.Handle(codeblock.Input("b")))

	require.NoError(t, b.Handle(codeblock.Undo()))
	assert.Equal(t, "a", b.Text())
	assert.Equal(t, 1, caret(s))

	require.NoError(t, b.Handle(codeblock.Redo()))
	assert.Equal(t, "ab", b.Text())
	assert.Equal(t, 2, caret(s))
}

func TestOnPaste_ExtractsTextAndSuggests(t *testing.T) {
	t.Parallel()

	b, s := newBlock("", highlight.PlainText)
	require.NoError(t, b.OnPaste("PRE", "<pre>package main\r\n\nfunc f() {}</pre>"))

	assert.Equal(t, "package main\n\nfunc f() {}", b.Text())
	assert.Equal(t, highlight.PlainText, b.Language())
	assert.Equal(t, "Go", b.SuggestedLanguage())
	assert.Equal(t, len([]rune(b.Text())), caret(s))

	require.Error(t, b.OnPaste("div", "<div>x</div>"))
}

func TestSaveAndSetData(t *testing.T) {
	t.Parallel()

	b := codeblock.New(codeblock.Options{
		Data:   codeblock.Data{Code: "a\nb", Language: "Go"},
		Resize: codeblock.Resize{MinHeight: 10},
	})
	assert.Equal(t, codeblock.Data{Code: "a\nb", Language: "Go", LineNumber: 2}, b.Save())

	b.SetData(codeblock.Data{Code: "x"})
	assert.Equal(t, "x", b.Text())
	assert.Equal(t, highlight.PlainText, b.Language())
	assert.False(t, b.Markup().Highlighted)
}

func TestSave_PersistedHeightRoundTrips(t *testing.T) {
	t.Parallel()

	code := ""
	for i := 0; i < 29; i++ {
		code += "line\n"
	}
	b := codeblock.New(codeblock.Options{
		Data:   codeblock.Data{Code: code, Language: "Go", LineNumber: 20},
		Resize: codeblock.Resize{MinHeight: 10},
	})
	assert.Equal(t, 30, b.Resizer().ContentHeight())
	assert.True(t, b.Resizer().HandleVisible())
	assert.Equal(t, 20, b.Save().LineNumber)
}

func TestCopy_ConfirmationGuardsReentry(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	b := codeblock.New(codeblock.Options{
		Data:      codeblock.Data{Code: "a=1", Language: "Python"},
		Clipboard: clip,
	})
	assert.Equal(t, codeblock.CopyLabel, b.CopyLabel())

	ok, err := b.Copy()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, codeblock.CopyConfirming, b.CopyState())
	assert.Equal(t, codeblock.CopiedLabel, b.CopyLabel())

	ok, err = b.Copy()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"a=1"}, clip.writes)

	b.ResetCopy()
	assert.Equal(t, codeblock.CopyReady, b.CopyState())
}

func TestCopy_Failure(t *testing.T) {
	t.Parallel()

	b := codeblock.New(codeblock.Options{Clipboard: &fakeClipboard{writeErr: assert.AnError}})
	ok, err := b.Copy()
	assert.False(t, ok)
	require.ErrorIs(t, err, codeblock.ErrCopyFailed)
	assert.Equal(t, codeblock.CopyReady, b.CopyState())

	b = codeblock.New(codeblock.Options{})
	_, err = b.Copy()
	require.ErrorIs(t, err, codeblock.ErrClipboardUnavailable)
}

func TestLanguageMenuAndToolbar(t *testing.T) {
	t.Parallel()

	b := codeblock.New(codeblock.Options{
		Data:     codeblock.Data{Code: "x"},
		Features: codeblock.AllFeatures(),
	})
	assert.False(t, b.ToolbarVisible())

	b.Hover(true)
	assert.True(t, b.ToolbarVisible())

	b.OpenMenu()
	b.Hover(false)
	assert.True(t, b.ToolbarVisible(), "open menu keeps the toolbar")

	b.SetMenuQuery("py")
	assert.Equal(t, []string{"Python"}, b.MenuOptions())

	require.NoError(t, b.SelectLanguage("Python"))
	assert.False(t, b.MenuOpen())
	assert.False(t, b.ToolbarVisible())
	assert.Equal(t, "Python", b.Language())
}

func TestOpenMenu_DisabledFeature(t *testing.T) {
	t.Parallel()

	b := codeblock.New(codeblock.Options{})
	b.OpenMenu()
	assert.False(t, b.MenuOpen())
}

func TestPlaceholderIsLocalized(t *testing.T) {
	t.Parallel()

	b := codeblock.New(codeblock.Options{
		Host: codeblock.Host{Localizer: codeblock.LocalizerFunc(func(key string) string {
			return "[" + key + "]"
		})},
	})
	assert.Equal(t, "[Enter a code]", b.Placeholder())
	assert.True(t, b.ShowPlaceholder())
}
