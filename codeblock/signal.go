package codeblock

// SignalKind identifies an editing signal delivered by the host.
type SignalKind uint8

const (
	SignalInput SignalKind = iota
	SignalPaste
	SignalPasteText
	SignalCompositionStart
	SignalCompositionUpdate
	SignalCompositionEnd
	SignalTab
	SignalShiftTab
	SignalBackspace
	SignalDelete
	SignalNewline
	SignalUndo
	SignalRedo
)

var signalNames = [...]string{
	SignalInput:             "input",
	SignalPaste:             "paste",
	SignalPasteText:         "paste-text",
	SignalCompositionStart:  "composition-start",
	SignalCompositionUpdate: "composition-update",
	SignalCompositionEnd:    "composition-end",
	SignalTab:               "tab",
	SignalShiftTab:          "shift-tab",
	SignalBackspace:         "backspace",
	SignalDelete:            "delete",
	SignalNewline:           "newline",
	SignalUndo:              "undo",
	SignalRedo:              "redo",
}

func (k SignalKind) String() string {
	if int(k) < len(signalNames) {
		return signalNames[k]
	}
	return "unknown"
}

// Signal is one editing event. Text is used by SignalInput, SignalPasteText,
// SignalCompositionUpdate and SignalCompositionEnd.
type Signal struct {
	Kind SignalKind
	Text string
}

func Input(text string) Signal { return Signal{Kind: SignalInput, Text: text} }

func Paste() Signal { return Signal{Kind: SignalPaste} }

// PasteText is a paste whose text the host already read.
func PasteText(text string) Signal { return Signal{Kind: SignalPasteText, Text: text} }

func CompositionStart() Signal { return Signal{Kind: SignalCompositionStart} }

func CompositionUpdate(text string) Signal {
	return Signal{Kind: SignalCompositionUpdate, Text: text}
}

func CompositionEnd(text string) Signal { return Signal{Kind: SignalCompositionEnd, Text: text} }

func Tab() Signal       { return Signal{Kind: SignalTab} }
func ShiftTab() Signal  { return Signal{Kind: SignalShiftTab} }
func Backspace() Signal { return Signal{Kind: SignalBackspace} }
func Delete() Signal    { return Signal{Kind: SignalDelete} }
func Newline() Signal   { return Signal{Kind: SignalNewline} }
func Undo() Signal      { return Signal{Kind: SignalUndo} }
func Redo() Signal      { return Signal{Kind: SignalRedo} }

func (s Signal) isComposition() bool {
	switch s.Kind {
	case SignalCompositionStart, SignalCompositionUpdate, SignalCompositionEnd:
		return true
	default:
		return false
	}
}
