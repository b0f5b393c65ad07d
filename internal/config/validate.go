package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/codeplus/internal/logging"
)

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// Validate reports every invalid field, joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Resize.MinHeight <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "resize.min_height",
			Value:   c.Resize.MinHeight,
			Message: "must be positive",
		})
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   c.LogLevel,
			Message: "must be one of debug, info, warn, error",
		})
	}
	for i, lang := range c.Languages {
		if strings.TrimSpace(lang) == "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("languages[%d]", i),
				Value:   lang,
				Message: "must not be blank",
			})
		}
	}
	return errors.Join(errs...)
}
