package editor

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeplus/buffer"
	"github.com/iw2rmb/codeplus/codeblock"
	graphemeutil "github.com/iw2rmb/codeplus/internal/grapheme"
	"github.com/iw2rmb/codeplus/internal/logging"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	m.status.text = ""

	if m.block.MenuOpen() {
		return m.updateMenuKey(msg)
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.handle(codeblock.PasteText(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.handle(codeblock.Backspace())
	case key.Matches(msg, km.Delete):
		m.handle(codeblock.Delete())
	case key.Matches(msg, km.Enter):
		m.handle(codeblock.Newline())
	case key.Matches(msg, km.Indent):
		m.handle(codeblock.Tab())
	case key.Matches(msg, km.Outdent):
		m.handle(codeblock.ShiftTab())

	case key.Matches(msg, km.Undo):
		m.handle(codeblock.Undo())
	case key.Matches(msg, km.Redo):
		m.handle(codeblock.Redo())

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if m.copySelection() {
			m.handle(codeblock.Backspace())
		}
	case key.Matches(msg, km.Paste):
		m.handle(codeblock.Paste())

	case key.Matches(msg, km.LanguageMenu):
		m.openMenu()
	case key.Matches(msg, km.CopyBlock):
		cmd := m.copyBlock()
		return m, cmd
	case key.Matches(msg, km.ToggleExpand):
		m.toggleExpand()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.handle(codeblock.Input(string(msg.Runes)))
		} else if msg.Type == tea.KeySpace {
			m.handle(codeblock.Input(" "))
		}
	}

	return m, nil
}

// handle runs one signal through the block. Notices raised by the block
// are already on the status line; other failures are shown there too.
func (m *Model) handle(sig codeblock.Signal) {
	err := m.block.Handle(sig)
	switch {
	case err == nil:
	case errors.Is(err, codeblock.ErrClipboardUnavailable):
		m.logger.Debug("paste unavailable", logging.FieldError, err)
	default:
		m.logger.Warn("edit failed", logging.FieldSignal, sig.Kind, logging.FieldError, err)
		m.status.text = err.Error()
	}
}

// move applies a cursor movement to the surface selection.
func (m *Model) move(mv buffer.Move) {
	buf := m.block.Buffer()
	anchor, focus := m.caret()
	buf.ClearSelection()
	buf.SetOffset(focus)
	if anchor != focus {
		buf.SetSelection(buffer.Range{Start: buf.PosFromOffset(anchor), End: buf.PosFromOffset(focus)})
	}

	buf.Move(mv)

	focus = buf.Offset()
	anchor = focus
	if raw, ok := buf.SelectionRaw(); ok {
		anchor = buf.OffsetFromPos(raw.Start)
	}
	m.surf.SelectOffsets(anchor, focus)
}

// copySelection writes the selected text to the clipboard and reports
// whether it did.
func (m *Model) copySelection() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	start, end, ok := m.Selection()
	if !ok {
		return false
	}
	text := []rune(m.block.Text())
	end = clampInt(end, 0, len(text))
	start = clampInt(start, 0, end)
	if err := m.cfg.Clipboard.WriteText(string(text[start:end])); err != nil {
		m.logger.Warn("copy failed", logging.FieldError, err)
		m.status.text = err.Error()
		return false
	}
	return true
}

// copyBlock presses the copy button. The returned command ends the
// confirmation after codeblock.CopyConfirmDuration.
func (m *Model) copyBlock() tea.Cmd {
	if !m.block.Features().CopyButton {
		return nil
	}
	ok, err := m.block.Copy()
	if err != nil {
		m.status.text = err.Error()
		return nil
	}
	if !ok {
		return nil
	}
	m.copySeq++
	seq := m.copySeq
	return tea.Tick(codeblock.CopyConfirmDuration, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

func (m *Model) toggleExpand() {
	if !m.block.Features().ResizeHandle || !m.block.Resizer().HandleVisible() {
		return
	}
	m.block.Resizer().Toggle()
}

func (m *Model) openMenu() {
	if m.block.ReadOnly() {
		return
	}
	m.block.OpenMenu()
	m.menuIndex = 0
	lang := m.languageLabel()
	for i, l := range m.block.MenuOptions() {
		if l == lang {
			m.menuIndex = i
			break
		}
	}
}

func (m Model) updateMenuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	opts := m.block.MenuOptions()

	switch {
	case key.Matches(msg, km.CloseMenu), key.Matches(msg, km.LanguageMenu):
		m.block.CloseMenu()
	case key.Matches(msg, km.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, km.Down):
		if m.menuIndex < len(opts)-1 {
			m.menuIndex++
		}
	case key.Matches(msg, km.Enter):
		if len(opts) == 0 {
			return m, nil
		}
		m.selectLanguage(opts[clampInt(m.menuIndex, 0, len(opts)-1)])
	case key.Matches(msg, km.Backspace):
		m.setMenuQuery(graphemeutil.DropLast(m.block.MenuQuery()))
	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.setMenuQuery(m.block.MenuQuery() + string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.setMenuQuery(m.block.MenuQuery() + " ")
		}
	}
	return m, nil
}

func (m *Model) setMenuQuery(q string) {
	m.block.SetMenuQuery(q)
	m.menuIndex = 0
}

func (m *Model) selectLanguage(label string) {
	if err := m.block.SelectLanguage(label); err != nil {
		m.logger.Warn("language change failed", logging.FieldLanguage, label, logging.FieldError, err)
		m.status.text = err.Error()
	}
}
