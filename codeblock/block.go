package codeblock

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codeplus/buffer"
	"github.com/iw2rmb/codeplus/highlight"
	"github.com/iw2rmb/codeplus/internal/logging"
	"github.com/iw2rmb/codeplus/langdetect"
	"github.com/iw2rmb/codeplus/markup"
)

// Features toggles the optional parts of a block.
type Features struct {
	LanguageMenu bool
	CopyButton   bool
	ResizeHandle bool
}

// AllFeatures enables every optional part.
func AllFeatures() Features {
	return Features{LanguageMenu: true, CopyButton: true, ResizeHandle: true}
}

// Options configures a Block. Only Data is commonly set; every other field
// has a working default.
type Options struct {
	Data Data
	Host Host

	Surface   Surface
	Clipboard Clipboard
	Notifier  Notifier
	Renderer  *highlight.Renderer
	Logger    *log.Logger

	// Languages is the language menu. Empty means highlight.DefaultLanguages.
	Languages []string
	// Placeholder is the localization key shown while the block is empty.
	Placeholder string
	Features    Features
	Resize      Resize

	// HistoryLimit bounds undo history. Zero means the buffer default.
	HistoryLimit int

	// Measure returns the content height of a rendered tree, in the same
	// unit as Resize. Nil counts lines.
	Measure func(root *markup.Node) int

	OnTransition TransitionFunc
}

// Block is an editable code block. It is not safe for concurrent use.
type Block struct {
	buf      *buffer.Buffer
	language string

	surface      Surface
	clipboard    Clipboard
	notifier     Notifier
	renderer     *highlight.Renderer
	logger       *log.Logger
	localizer    Localizer
	classes      Classes
	readOnly     bool
	languages    []string
	placeholder  string
	features     Features
	resizer      *Resizer
	measure      func(root *markup.Node) int
	onTransition TransitionFunc

	state     State
	comp      composition
	markup    highlight.Markup
	suggested string
	copyState CopyState

	hovered   bool
	menuOpen  bool
	menuQuery string
}

func New(opts Options) *Block {
	b := &Block{
		language:     opts.Data.Language,
		surface:      opts.Surface,
		clipboard:    opts.Clipboard,
		notifier:     opts.Notifier,
		renderer:     opts.Renderer,
		logger:       opts.Logger,
		localizer:    opts.Host.Localizer,
		classes:      ClassesFor(opts.Host.Styles),
		readOnly:     opts.Host.ReadOnly,
		languages:    append([]string(nil), opts.Languages...),
		placeholder:  opts.Placeholder,
		features:     opts.Features,
		measure:      opts.Measure,
		onTransition: opts.OnTransition,
	}
	if b.language == "" {
		b.language = highlight.PlainText
	}
	if b.logger == nil {
		b.logger = logging.Discard()
	}
	if b.surface == nil {
		b.surface = NewMemorySurface()
	}
	if b.renderer == nil {
		b.renderer = highlight.New(highlight.Options{Logger: b.logger})
	}
	if b.localizer == nil {
		b.localizer = identityLocalizer{}
	}
	if len(b.languages) == 0 {
		b.languages = highlight.DefaultLanguages()
	}
	if b.placeholder == "" {
		b.placeholder = DefaultPlaceholder
	}
	if b.measure == nil {
		b.measure = countLines
	}

	resize := opts.Resize
	if opts.Data.LineNumber > resize.MaxHeight {
		resize.MaxHeight = opts.Data.LineNumber
	}
	b.resizer = NewResizer(resize)

	b.buf = buffer.New(buffer.NormalizeNewlines(opts.Data.Code), buffer.Options{HistoryLimit: opts.HistoryLimit})
	b.render()
	return b
}

func (b *Block) Text() string { return b.buf.Text() }

func (b *Block) Language() string { return b.language }

// Offset returns the caret offset recorded by the last edit.
func (b *Block) Offset() int { return b.buf.Offset() }

func (b *Block) State() State { return b.state }

func (b *Block) ReadOnly() bool { return b.readOnly }

func (b *Block) Surface() Surface { return b.surface }

// Root returns the content tree currently installed on the surface.
func (b *Block) Root() *markup.Node { return b.surface.Root() }

// Markup returns the renderer output for the current text.
func (b *Block) Markup() highlight.Markup { return b.markup }

func (b *Block) Buffer() *buffer.Buffer { return b.buf }

func (b *Block) Features() Features { return b.features }

func (b *Block) Classes() Classes { return b.classes }

func (b *Block) Resizer() *Resizer { return b.resizer }

func (b *Block) Languages() []string { return append([]string(nil), b.languages...) }

// Composition returns the IME composition state.
func (b *Block) Composition() CompositionState { return b.comp.state }

// Placeholder returns the localized placeholder text.
func (b *Block) Placeholder() string { return b.localizer.T(b.placeholder) }

// ShowPlaceholder reports whether the placeholder should be drawn.
func (b *Block) ShowPlaceholder() bool { return b.buf.Len() == 0 }

// SuggestedLanguage returns the menu entry detected for the last pasted
// element, or "".
func (b *Block) SuggestedLanguage() string { return b.suggested }

// Handle runs one editing signal through the pipeline. Read-only blocks
// ignore every signal. Boundary no-ops return nil and leave the text and
// caret untouched.
func (b *Block) Handle(sig Signal) error {
	if b.readOnly {
		return nil
	}
	text, drop := b.comp.filter(sig)
	if drop {
		return nil
	}
	return b.run(sig, text)
}

func (b *Block) run(sig Signal, text string) (err error) {
	cp := b.buf.Checkpoint()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("edit pipeline failed",
				logging.FieldSignal, sig.Kind, logging.FieldState, b.state, logging.FieldError, r)
			b.buf.Rollback(cp)
			b.resync()
			b.state = StateIdle
			err = fmt.Errorf("%w: %s: %v", ErrPipeline, sig.Kind, r)
		}
	}()

	b.transition(StateCapturing)
	b.capture()

	var changed bool
	switch sig.Kind {
	case SignalUndo:
		changed = b.buf.Undo()
	case SignalRedo:
		changed = b.buf.Redo()
	default:
		op, ok, err := b.classify(sig, text)
		if err != nil {
			b.transition(StateIdle)
			return err
		}
		if !ok {
			b.transition(StateIdle)
			return nil
		}
		changed = b.buf.Do(op)
	}
	if !changed {
		b.transition(StateIdle)
		return nil
	}

	b.transition(StateMutated)
	root := b.render()
	b.transition(StateRendered)
	Restore(b.surface, root, b.buf.Offset())
	b.transition(StateIdle)

	b.logger.Debug("edit applied",
		logging.FieldSignal, sig.Kind, logging.FieldOffset, b.buf.Offset(), logging.FieldLength, b.buf.Len())
	return nil
}

// capture loads the surface selection into the buffer. Without a selection
// the caret of the previous edit is kept.
func (b *Block) capture() {
	r, ok := b.surface.Selection()
	if !ok {
		b.buf.ClearSelection()
		return
	}
	start, end := markup.LinearRange(b.surface.Root(), r)
	if start == end {
		b.buf.ClearSelection()
		b.buf.SetOffset(start)
		return
	}
	b.buf.SetSelectionSpan(buffer.Span{Start: start, End: end})
}

func (b *Block) classify(sig Signal, text string) (buffer.Op, bool, error) {
	switch sig.Kind {
	case SignalInput, SignalCompositionEnd:
		if text == "" {
			return buffer.Op{}, false, nil
		}
		return buffer.Insert(text), true, nil
	case SignalNewline:
		return buffer.Insert("\n"), true, nil
	case SignalPaste:
		s, err := b.readClipboard()
		if err != nil {
			return buffer.Op{}, false, err
		}
		return buffer.PasteReplace(s, buffer.Span{}), true, nil
	case SignalPasteText:
		return buffer.PasteReplace(sig.Text, buffer.Span{}), true, nil
	case SignalTab:
		return buffer.IndentForward(), true, nil
	case SignalShiftTab:
		return buffer.IndentBackward(), true, nil
	case SignalBackspace:
		return buffer.DeleteBackward(), true, nil
	case SignalDelete:
		return buffer.DeleteForward(), true, nil
	default:
		return buffer.Op{}, false, nil
	}
}

func (b *Block) readClipboard() (string, error) {
	if b.clipboard == nil {
		b.notify(PasteUnsupportedMessage)
		return "", ErrClipboardUnavailable
	}
	s, err := b.clipboard.ReadText()
	if err != nil {
		b.logger.Warn("clipboard read failed", logging.FieldError, err)
		b.notify(PasteUnsupportedMessage)
		return "", fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return s, nil
}

func (b *Block) notify(msg string) {
	if b.notifier != nil {
		b.notifier.Notify(b.localizer.T(msg))
	}
}

func (b *Block) transition(to State) {
	from := b.state
	b.state = to
	if b.onTransition != nil {
		b.onTransition(from, to)
	}
}

// render highlights the buffer text and installs the resulting tree on the
// surface. Markup whose text content differs from the buffer text is
// discarded in favor of plain text.
func (b *Block) render() *markup.Node {
	text := b.buf.Text()
	b.markup = b.renderer.Render(text, b.language)

	root := markup.FromText(text)
	if b.markup.Highlighted {
		parsed, err := markup.Parse(b.markup.Source)
		switch {
		case err != nil:
			b.logger.Warn("highlighted markup did not parse", logging.FieldLanguage, b.language, logging.FieldError, err)
			b.markup = highlight.Markup{Source: text}
		case markup.Text(parsed) != text:
			b.logger.Warn("highlighted markup changed the text", logging.FieldLanguage, b.language)
			b.markup = highlight.Markup{Source: text}
		default:
			root = parsed
		}
	}

	b.surface.SetRoot(root)
	b.resizer.SetContentHeight(b.measure(root))
	return root
}

// rerender re-renders in place and puts the caret back at off.
func (b *Block) rerender(off int) {
	root := b.render()
	Restore(b.surface, root, off)
}

// resync renders the buffer after a rollback so the markup and the surface
// describe the restored text. A surface that fails again is left as is.
func (b *Block) resync() {
	defer func() {
		if r := recover(); r != nil {
			b.markup = highlight.Markup{Source: b.buf.Text()}
			b.logger.Error("resync after failed edit", logging.FieldError, r)
		}
	}()
	b.rerender(b.buf.Offset())
}

// caretOffset is the caret the surface shows, or the buffer caret when the
// surface has no selection.
func (b *Block) caretOffset() int {
	r, ok := b.surface.Selection()
	if !ok {
		return b.buf.Offset()
	}
	_, end := markup.LinearRange(b.surface.Root(), r)
	return end
}

// SetLanguage switches the highlight language. The text is unchanged and the
// caret keeps its linear offset.
func (b *Block) SetLanguage(language string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if language == "" {
		language = highlight.PlainText
	}
	off := b.caretOffset()
	b.language = language
	b.buf.SetOffset(off)
	b.rerender(off)
	b.logger.Debug("language changed", logging.FieldLanguage, language)
	return nil
}

// SetData replaces the block content from a record. It is a host-side
// update and bypasses the read-only flag.
func (b *Block) SetData(d Data) {
	if d.Language == "" {
		d.Language = highlight.PlainText
	}
	b.language = d.Language
	b.buf.SetText(buffer.NormalizeNewlines(d.Code))
	b.rerender(b.buf.Offset())
}

// OnPaste takes over a pasted element routed by the host. Its text content
// replaces the block text; the language is kept and a suggestion is
// computed from the new text.
func (b *Block) OnPaste(tag, html string) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if !acceptsTag(tag) {
		return fmt.Errorf("codeblock: paste of <%s> is not handled", tag)
	}
	text, err := markup.TextContent(html)
	if err != nil {
		return fmt.Errorf("read pasted <%s>: %w", tag, err)
	}
	text = buffer.NormalizeNewlines(text)

	b.buf.SetText(text)
	b.buf.SetOffset(b.buf.Len())
	b.suggested = langdetect.Suggest(text, b.languages)
	b.rerender(b.buf.Offset())
	b.logger.Debug("pasted element", "tag", tag, logging.FieldLength, b.buf.Len(), "suggested", b.suggested)
	return nil
}

func acceptsTag(tag string) bool {
	for _, t := range Tool().PasteConfig.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Save returns the persisted record: the plain text, the language, and the
// visible height.
func (b *Block) Save() Data {
	return Data{
		Code:       b.buf.Text(),
		Language:   b.language,
		LineNumber: b.resizer.Visible(),
	}
}

// Copy writes the plain text to the clipboard and switches the copy button
// to its confirmation. It reports false without writing while the
// confirmation is still shown.
func (b *Block) Copy() (bool, error) {
	if b.copyState == CopyConfirming {
		return false, nil
	}
	if b.clipboard == nil {
		return false, fmt.Errorf("%w: %w", ErrCopyFailed, ErrClipboardUnavailable)
	}
	if err := b.clipboard.WriteText(b.buf.Text()); err != nil {
		b.logger.Warn("copy failed", logging.FieldError, err)
		return false, fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}
	b.copyState = CopyConfirming
	return true, nil
}

// ResetCopy ends the copy confirmation. Hosts call it CopyConfirmDuration
// after a successful Copy.
func (b *Block) ResetCopy() { b.copyState = CopyReady }

func (b *Block) CopyState() CopyState { return b.copyState }

// CopyLabel returns the localized copy button label for the current state.
func (b *Block) CopyLabel() string {
	if b.copyState == CopyConfirming {
		return b.localizer.T(CopiedLabel)
	}
	return b.localizer.T(CopyLabel)
}

// Hover records whether the pointer is over the block.
func (b *Block) Hover(on bool) { b.hovered = on }

// ToolbarVisible reports whether the toolbar is shown: while hovered, and
// while the language menu is open.
func (b *Block) ToolbarVisible() bool { return b.hovered || b.menuOpen }

// OpenMenu opens the language menu with an empty filter.
func (b *Block) OpenMenu() {
	if !b.features.LanguageMenu {
		return
	}
	b.menuOpen = true
	b.menuQuery = ""
}

func (b *Block) CloseMenu() {
	b.menuOpen = false
	b.menuQuery = ""
}

func (b *Block) MenuOpen() bool { return b.menuOpen }

func (b *Block) SetMenuQuery(q string) { b.menuQuery = q }

func (b *Block) MenuQuery() string { return b.menuQuery }

// MenuOptions returns the languages matching the menu filter.
func (b *Block) MenuOptions() []string {
	return FilterLanguages(b.languages, b.menuQuery)
}

// SelectLanguage picks a menu entry and closes the menu.
func (b *Block) SelectLanguage(label string) error {
	b.CloseMenu()
	return b.SetLanguage(label)
}

func countLines(root *markup.Node) int {
	return strings.Count(markup.Text(root), "\n") + 1
}
