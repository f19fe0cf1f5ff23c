package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError reports a theme that cannot be built from configuration.
type ThemeError struct {
	Theme   string
	Message string
	Err     error
}

// NewThemeError constructs a ThemeError for the named theme.
func NewThemeError(theme, message string, err error) error {
	return &ThemeError{Theme: theme, Message: message, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Theme != "" {
		return fmt.Sprintf("theme error [%s]: %s", e.Theme, e.Message)
	}
	return fmt.Sprintf("theme error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FieldError indicates a form field that cannot be turned into a renderable field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// NewFieldError constructs a FieldError for the named field.
func NewFieldError(field string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &FieldError{Field: field, Message: message, Err: err}
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("field error [%s]: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("field error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
