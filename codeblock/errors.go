package codeblock

import "errors"

var (
	// ErrClipboardUnavailable is returned when a paste or copy needs a
	// clipboard and none can be read or written.
	ErrClipboardUnavailable = errors.New("codeblock: clipboard unavailable")

	// ErrReadOnly is returned by mutating calls on a read-only block.
	ErrReadOnly = errors.New("codeblock: block is read-only")

	// ErrInvalidRecord is returned when a persisted record is not valid JSON.
	ErrInvalidRecord = errors.New("codeblock: invalid record")

	// ErrCopyFailed is returned when the clipboard rejects a copy.
	ErrCopyFailed = errors.New("codeblock: copy failed")

	// ErrPipeline is returned when an edit could not complete. The block
	// keeps its pre-signal text.
	ErrPipeline = errors.New("codeblock: edit pipeline failed")
)
