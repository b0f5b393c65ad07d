package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
//
// It has the same shape as codeblock.Clipboard so one value serves both.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// Unsupported reports whether no clipboard utility is available, in which
// case hosts should leave Config.Clipboard nil.
func (SystemClipboard) Unsupported() bool { return clipboard.Unsupported }
