package codeblock_test

import (
	"errors"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/markup"
)

type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
	writes   []string
}

func (c *fakeClipboard) ReadText() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	return c.text, nil
}

func (c *fakeClipboard) WriteText(s string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, s)
	c.text = s
	return nil
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) { n.messages = append(n.messages, message) }

// panickySurface panics on SetRoot once armed, or on Collapse once
// armedCollapse is set.
type panickySurface struct {
	*codeblock.MemorySurface
	armed         bool
	armedCollapse bool
}

func (s *panickySurface) Collapse(loc markup.Location) {
	if s.armedCollapse {
		panic(errors.New("selection lost"))
	}
	s.MemorySurface.Collapse(loc)
}

func (s *panickySurface) SetRoot(root *markup.Node) {
	if s.armed {
		panic(errors.New("surface detached"))
	}
	s.MemorySurface.SetRoot(root)
}

func newBlock(code, language string) (*codeblock.Block, *codeblock.MemorySurface) {
	surface := codeblock.NewMemorySurface()
	b := codeblock.New(codeblock.Options{
		Data:    codeblock.Data{Code: code, Language: language},
		Surface: surface,
	})
	return b, surface
}

func caret(s *codeblock.MemorySurface) int {
	off, ok := s.CaretOffset()
	if !ok {
		return -1
	}
	return off
}
