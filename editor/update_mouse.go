package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.block.Hover(m.mouseInBounds(msg.X, msg.Y))

	r := m.block.Resizer()
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.onHandle(msg.X, msg.Y):
			now := m.now()
			if !m.lastHandleDown.IsZero() && now.Sub(m.lastHandleDown) <= doubleClickInterval {
				m.lastHandleDown = now.Add(-2 * doubleClickInterval)
				m.toggleExpand()
				return m, nil
			}
			m.lastHandleDown = now
			r.BeginDrag(msg.Y)
		case m.hasToolbar() && msg.Y == 0:
			cmd = m.clickToolbar(msg.X)
			return m, cmd
		case m.block.MenuOpen():
			m.clickMenu(msg.Y)
		case m.inBody(msg.X, msg.Y) && m.focused:
			off := m.screenToOffset(msg.X, msg.Y)
			if msg.Shift {
				anchor, _ := m.caret()
				m.mouseAnchor = anchor
			} else {
				m.mouseAnchor = off
			}
			m.surf.SelectOffsets(m.mouseAnchor, off)
			m.mouseDragging = true
		}

	case tea.MouseActionMotion:
		if r.Dragging() {
			r.DragTo(msg.Y)
			return m, nil
		}
		if !m.mouseDragging {
			return m, nil
		}
		x, y := m.clampMouseToBody(msg.X, msg.Y)
		m.surf.SelectOffsets(m.mouseAnchor, m.screenToOffset(x, y))

	case tea.MouseActionRelease:
		r.EndDrag()
		m.mouseDragging = false
	}

	return m, nil
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m *Model) clickToolbar(x int) tea.Cmd {
	if !m.toolbarVisible() {
		return nil
	}
	_, langEnd, copyStart, copyEnd := m.toolbarRegions()
	switch {
	case x < langEnd:
		if m.block.MenuOpen() {
			m.block.CloseMenu()
		} else {
			m.openMenu()
		}
	case x >= copyStart && x < copyEnd:
		return m.copyBlock()
	}
	return nil
}

func (m *Model) clickMenu(y int) {
	row := y - m.bodyTop() - 1
	if row < 0 {
		return
	}
	opts := m.block.MenuOptions()
	start, end := m.menuWindow(len(opts))
	if i := start + row; i < end {
		m.selectLanguage(opts[i])
	}
}

func (m *Model) mouseInBounds(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	if m.width > 0 && x >= m.width {
		return false
	}
	return y < m.bodyTop()+m.shownHeight()+1
}

func (m *Model) inBody(x, y int) bool {
	top := m.bodyTop()
	return x >= 0 && y >= top && y < top+m.viewport.Height
}

// onHandle reports whether (x, y) is on the drawn resize handle.
func (m *Model) onHandle(x, y int) bool {
	h := m.handleText()
	if h == "" {
		return false
	}
	return y == m.bodyTop()+m.shownHeight() && x >= 0 && x < len([]rune(h))
}

func (m *Model) clampMouseToBody(x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if m.viewport.Width > 0 && x >= m.viewport.Width {
		x = m.viewport.Width - 1
	}
	top := m.bodyTop()
	y = clampInt(y, top, top+m.viewport.Height-1)
	return x, y
}
