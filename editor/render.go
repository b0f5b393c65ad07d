package editor

import (
	"strings"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/highlight"
	graphemeutil "github.com/iw2rmb/codeplus/internal/grapheme"
)

type segKind uint8

const (
	segText segKind = iota
	segSelected
)

func (m *Model) renderContent() string {
	st := m.cfg.Style
	anchor, focus := m.caret()
	selStart, selEnd := anchor, focus
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}
	hasSel := selStart != selEnd
	showCursor := m.focused && !m.block.MenuOpen()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(m.layout.lines))
	}
	cursorRow := m.layout.lineOf(focus)

	out := make([]string, 0, len(m.layout.lines))
	for row, ln := range m.layout.lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, digits, row == cursorRow))
		}
		if m.block.ShowPlaceholder() {
			if showCursor {
				sb.WriteString(st.Cursor.Render(" "))
			}
			sb.WriteString(st.Placeholder.Render(m.block.Placeholder()))
			out = append(out, sb.String())
			continue
		}
		sb.WriteString(m.renderLine(ln, focus, showCursor, selStart, selEnd, hasSel))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine draws one line. Consecutive cells from the same text node in
// the same selection state are rendered as one styled segment.
func (m *Model) renderLine(ln layoutLine, focus int, showCursor bool, selStart, selEnd int, hasSel bool) string {
	st := m.cfg.Style
	var (
		sb   strings.Builder
		seg  strings.Builder
		kind segKind
		run  = -1
	)
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		style := m.layout.styles[run].Inherit(st.Text)
		if kind == segSelected {
			style = st.Selection.Inherit(style)
		}
		sb.WriteString(style.Render(seg.String()))
		seg.Reset()
	}

	for i, c := range ln.Cells {
		if showCursor && focus >= c.Offset && focus < c.Offset+c.Runes {
			flush()
			text := c.Text
			if graphemeutil.IsSpace(text) && trailingSpaces(ln.Cells[i:]) {
				// Trailing spaces can be elided by terminals at line end.
				text = strings.ReplaceAll(text, " ", "\u00a0")
			}
			sb.WriteString(st.Cursor.Render(text))
			run = -1
			continue
		}

		k := segText
		if hasSel && c.Offset >= selStart && c.Offset < selEnd {
			k = segSelected
		}
		if k != kind || c.Run != run {
			flush()
			kind, run = k, c.Run
		}
		seg.WriteString(c.Text)
	}
	flush()

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if showCursor && focus == ln.End {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func trailingSpaces(cells []graphemeCell) bool {
	for _, c := range cells {
		if !graphemeutil.IsSpace(c.Text) {
			return false
		}
	}
	return true
}

// Content renders every line of the block without the viewport or chrome.
func (m Model) Content() string { return m.renderContent() }

// View renders the toolbar, the content or the open language menu, and the
// footer.
func (m Model) View() string {
	parts := make([]string, 0, 3)
	if m.hasToolbar() {
		parts = append(parts, m.renderToolbar())
	}
	if m.block.MenuOpen() {
		parts = append(parts, m.renderMenu())
	} else {
		parts = append(parts, m.viewport.View())
	}
	parts = append(parts, m.renderFooter())
	return strings.Join(parts, "\n")
}

func (m *Model) t(key string) string {
	if m.cfg.Localizer == nil {
		return key
	}
	return m.cfg.Localizer.T(key)
}

// languageLabel is the toolbar text for the current language.
func (m *Model) languageLabel() string {
	lang := m.block.Language()
	if highlight.IsPlain(lang) {
		for _, l := range m.block.Languages() {
			if highlight.IsPlain(l) {
				return l
			}
		}
		return "Plain Text"
	}
	return lang
}

// toolbarVisible reports whether the toolbar is drawn. Keyboard users
// have no hover, so focus shows it too.
func (m *Model) toolbarVisible() bool {
	return m.block.ToolbarVisible() || m.focused
}

// toolbarRegions returns the column spans of the language label and the
// copy button. Empty spans mean the part is not drawn.
func (m *Model) toolbarRegions() (langStart, langEnd, copyStart, copyEnd int) {
	f := m.block.Features()
	if f.LanguageMenu {
		langEnd = len([]rune(m.languageLabel() + " ▾"))
	}
	if f.CopyButton {
		w := len([]rune(m.block.CopyLabel()))
		copyStart = langEnd + 2
		if m.width > 0 && m.width-w > copyStart {
			copyStart = m.width - w
		}
		copyEnd = copyStart + w
	}
	return 0, langEnd, copyStart, copyEnd
}

func (m *Model) renderToolbar() string {
	st := m.cfg.Style
	if !m.toolbarVisible() {
		return ""
	}
	_, langEnd, copyStart, copyEnd := m.toolbarRegions()

	var sb strings.Builder
	if langEnd > 0 {
		sb.WriteString(st.Language.Render(m.languageLabel() + " ▾"))
	}
	if copyEnd > copyStart {
		sb.WriteString(st.Toolbar.Render(strings.Repeat(" ", copyStart-langEnd)))
		label := st.CopyButton
		if m.block.CopyState() == codeblock.CopyConfirming {
			label = st.Copied
		}
		sb.WriteString(label.Render(m.block.CopyLabel()))
	}
	return sb.String()
}

// menuHeight is the height of the open menu: room for every language when
// the terminal allows it, and never less than the content it covers.
func (m *Model) menuHeight() int {
	h := len(m.block.Languages()) + 1
	if m.height > 0 {
		if avail := m.height - m.chromeHeight(); h > avail {
			h = avail
		}
	}
	if body := m.bodyHeight(); h < body {
		h = body
	}
	return h
}

// shownHeight is the number of rows between the toolbar and the footer.
func (m *Model) shownHeight() int {
	if m.block.MenuOpen() {
		return m.menuHeight()
	}
	return m.viewport.Height
}

// menuWindow returns the range of options shown below the search line.
func (m *Model) menuWindow(n int) (start, end int) {
	rows := m.menuHeight() - 1
	if rows < 1 {
		rows = 1
	}
	if n <= rows {
		return 0, n
	}
	start = m.menuIndex - rows + 1
	if start < 0 {
		start = 0
	}
	return start, start + rows
}

func (m *Model) renderMenu() string {
	st := m.cfg.Style
	opts := m.block.MenuOptions()
	lines := []string{st.MenuSearch.Render(m.t(codeblock.SearchLabel) + ": " + m.block.MenuQuery() + "▏")}

	start, end := m.menuWindow(len(opts))
	for i := start; i < end; i++ {
		item := st.MenuItem
		if i == m.menuIndex {
			item = st.MenuSelected
		}
		lines = append(lines, item.Render(opts[i]))
	}
	for len(lines) < m.menuHeight() {
		lines = append(lines, "")
	}
	return st.Menu.Render(strings.Join(lines, "\n"))
}

// handleText is the drawn resize handle; its arrow shows the toggle
// direction.
func (m *Model) handleText() string {
	r := m.block.Resizer()
	if !m.block.Features().ResizeHandle || !r.HandleVisible() {
		return ""
	}
	if r.Expanded() {
		return "━━━ ▲ ━━━"
	}
	return "━━━ ▼ ━━━"
}

func (m *Model) renderFooter() string {
	st := m.cfg.Style
	var parts []string
	if h := m.handleText(); h != "" {
		parts = append(parts, st.Handle.Render(h))
	}
	if s := m.status.text; s != "" {
		parts = append(parts, st.Status.Render(s))
	}
	return strings.Join(parts, "  ")
}
