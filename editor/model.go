package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/highlight"
	"github.com/iw2rmb/codeplus/internal/logging"
	"github.com/iw2rmb/codeplus/markup"
)

// doubleClickInterval bounds two handle clicks that toggle the height.
const doubleClickInterval = 400 * time.Millisecond

// status holds the notice shown in the footer. It is shared by copies of a
// Model so the block's notifier can reach it.
type status struct {
	text string
}

// Model is a Bubble Tea component that edits one code block.
type Model struct {
	cfg    Config
	block  *codeblock.Block
	surf   *codeblock.MemorySurface
	theme  highlight.Theme
	logger *log.Logger
	status *status

	focused bool

	viewport      viewport.Model
	width, height int
	layout        layout

	menuIndex int
	copySeq   int

	mouseAnchor    int
	mouseDragging  bool
	lastHandleDown time.Time
	now            func() time.Time

	lastEvent ChangeEvent
	hasEvent  bool
}

func New(cfg Config) Model {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = DefaultMinHeight
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		cfg:      cfg,
		surf:     codeblock.NewMemorySurface(),
		theme:    highlight.NewTheme(cfg.Theme),
		logger:   logger,
		status:   &status{},
		focused:  true,
		viewport: viewport.New(0, 0),
		now:      time.Now,
	}

	st := m.status
	notifier := codeblock.NotifierFunc(func(msg string) {
		st.text = msg
		if cfg.Notifier != nil {
			cfg.Notifier.Notify(msg)
		}
	})

	opts := codeblock.Options{
		Data: cfg.Data,
		Host: codeblock.Host{
			Localizer: cfg.Localizer,
			ReadOnly:  cfg.ReadOnly,
		},
		Surface:      m.surf,
		Clipboard:    cfg.Clipboard,
		Notifier:     notifier,
		Renderer:     highlight.New(highlight.Options{Logger: logger, Style: m.theme.Name}),
		Logger:       logger,
		Languages:    cfg.Languages,
		Placeholder:  cfg.Placeholder,
		Features:     cfg.Features,
		Resize:       codeblock.Resize{MinHeight: cfg.MinHeight},
		HistoryLimit: cfg.HistoryLimit,
	}
	m.block = codeblock.New(opts)
	m.surf.SelectOffsets(0, 0)

	m.resizeViewport()
	m.rebuildContent()
	m.lastEvent, m.hasEvent = buildChangeEvent(&m), true
	return m
}

// Block returns the hosted block.
func (m Model) Block() *codeblock.Block { return m.block }

// Data returns the record to persist.
func (m Model) Data() codeblock.Data { return m.block.Save() }

// Status returns the notice shown in the footer, or "".
func (m Model) Status() string { return m.status.text }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	m.resizeViewport()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.block.Hover(false)
		m.block.CloseMenu()
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// copyResetMsg ends the copy confirmation started by copy number seq.
type copyResetMsg struct{ seq int }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.block.ResetCopy()
		}
	default:
		return m, nil
	}
	m.afterUpdate()
	return m, cmd
}

// afterUpdate refreshes the drawn content and reports changes.
func (m *Model) afterUpdate() {
	m.resizeViewport()
	m.rebuildContent()
	m.followCursor()

	ev := buildChangeEvent(m)
	if m.hasEvent && ev.equal(m.lastEvent) {
		return
	}
	m.lastEvent, m.hasEvent = ev, true
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

func (m *Model) rebuildContent() {
	m.layout = buildLayout(m.surf.Root(), m.theme, m.cfg.TabWidth)
	m.viewport.SetContent(m.renderContent())
}

// caret returns the selection anchor and focus as rune offsets. Without a
// selection both are the block caret.
func (m *Model) caret() (anchor, focus int) {
	r, ok := m.surf.Selection()
	if !ok {
		off := m.block.Offset()
		return off, off
	}
	root := m.surf.Root()
	return markup.ToLinear(root, r.Start), markup.ToLinear(root, r.End)
}

// Selection returns the selected rune span, normalized.
func (m Model) Selection() (start, end int, ok bool) {
	anchor, focus := m.caret()
	if anchor == focus {
		return focus, focus, false
	}
	if anchor > focus {
		anchor, focus = focus, anchor
	}
	return anchor, focus, true
}

// Offset returns the caret offset.
func (m Model) Offset() int {
	_, focus := m.caret()
	return focus
}

// SetOffset collapses the selection at off.
func (m Model) SetOffset(off int) Model {
	m.surf.SelectOffsets(off, off)
	m.afterUpdate()
	return m
}

// SetSelection selects [anchor, focus); the caret is drawn at focus.
func (m Model) SetSelection(anchor, focus int) Model {
	m.surf.SelectOffsets(anchor, focus)
	m.afterUpdate()
	return m
}
