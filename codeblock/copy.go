package codeblock

import "time"

// CopyConfirmDuration is how long the copy button shows its confirmation.
const CopyConfirmDuration = time.Second

// CopyState is the state of the copy button.
type CopyState uint8

const (
	CopyReady CopyState = iota
	CopyConfirming
)

func (s CopyState) String() string {
	if s == CopyConfirming {
		return "confirming"
	}
	return "ready"
}

// Localization keys of the copy button labels.
const (
	CopyLabel   = "Click to copy"
	CopiedLabel = "Copied"
)
