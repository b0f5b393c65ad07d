package editor

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/codeplus/codeblock"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

var errNoClipboard = errors.New("no clipboard")

func newModel(code string) Model {
	return New(Config{Data: codeblock.Data{Code: code, Language: "plaintext"}})
}

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

// markStyle wraps rendered text in brackets so tests can see where a style
// applies without depending on terminal colors.
func markStyle(open, close string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string { return open + s + close })
}

func stripANSI(s string) string { return ansi.Strip(s) }

func trimLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}
