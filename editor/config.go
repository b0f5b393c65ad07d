package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codeplus/codeblock"
)

// DefaultMinHeight is the collapsed block height in terminal rows.
const DefaultMinHeight = 10

// Config configures the editor Model.
type Config struct {
	// Data is the record the block starts from.
	Data codeblock.Data

	// Languages is the language menu. Empty means highlight.DefaultLanguages.
	Languages []string
	// Theme names a Chroma style. Empty means highlight.DefaultStyle.
	Theme string

	// Placeholder is the localization key shown while the block is empty.
	Placeholder string
	Localizer   codeblock.Localizer

	ReadOnly bool
	Features codeblock.Features

	// MinHeight is the collapsed height in rows. Zero means DefaultMinHeight.
	MinHeight int

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	Style        Style
	KeyMap       KeyMap

	// Forwarded to codeblock.Options.
	HistoryLimit int

	// Clipboard backs paste, copy, and the copy button. Nil disables them;
	// paste then reports that it is unsupported.
	Clipboard Clipboard
	// Notifier receives user-facing notices in addition to the status line.
	Notifier codeblock.Notifier
	Logger   *log.Logger

	// OnChange is called after any update that changes the text, the
	// language, or the caret.
	OnChange func(ChangeEvent)
}
