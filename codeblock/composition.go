package codeblock

// CompositionState tracks IME composition.
type CompositionState uint8

const (
	NotComposing CompositionState = iota
	Composing
	JustCommitted
)

func (s CompositionState) String() string {
	switch s {
	case NotComposing:
		return "not-composing"
	case Composing:
		return "composing"
	case JustCommitted:
		return "just-committed"
	default:
		return "unknown"
	}
}

// composition filters signals so a composed string produces exactly one
// insert: the one carried by the composition end.
type composition struct {
	state     CompositionState
	committed string
}

// filter reports the text to insert for sig, and whether sig must be dropped
// entirely. Only input and composition signals carry insert text.
func (c *composition) filter(sig Signal) (insert string, drop bool) {
	if sig.isComposition() {
		return c.advance(sig)
	}

	switch c.state {
	case Composing:
		return "", true
	case JustCommitted:
		echo := sig.Kind == SignalInput && sig.Text == c.committed
		c.state = NotComposing
		c.committed = ""
		if echo {
			return "", true
		}
	}
	return sig.Text, false
}

// advance moves the tracker on a composition signal. Only the end of a
// composition inserts text.
func (c *composition) advance(sig Signal) (insert string, drop bool) {
	switch sig.Kind {
	case SignalCompositionStart:
		c.state = Composing
		c.committed = ""
	case SignalCompositionEnd:
		c.state = JustCommitted
		c.committed = sig.Text
		return sig.Text, sig.Text == ""
	}
	return "", true
}
