package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError   = "error"
	FieldPath    = "path"
	FieldConfig  = "config"
	FieldCommand = "command"

	// Block fields.
	FieldLanguage = "language"
	FieldOffset   = "offset"
	FieldState    = "state"
	FieldSignal   = "signal"
	FieldOp       = "op"
	FieldLength   = "length"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
