package errors

import (
	stdErrors "errors"
	"fmt"
)

// ParseError represents a YAML or JSON parsing failure with optional line metadata.
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

// ValidationError captures sheet and decoding validation issues.
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

// SelectorErrorKind distinguishes the two ways a selector can be assembled incorrectly.
type SelectorErrorKind int

const (
	// KindDuplicateFragment reports a second element, id or pseudo-element.
	KindDuplicateFragment SelectorErrorKind = iota + 1
	// KindOutOfOrderFragment reports a fragment appended after a later category.
	KindOutOfOrderFragment
)

func (k SelectorErrorKind) String() string {
	switch k {
	case KindDuplicateFragment:
		return "duplicate fragment"
	case KindOutOfOrderFragment:
		return "out-of-order fragment"
	default:
		return "unknown"
	}
}

var (
	// ErrDuplicateFragment matches every SelectorError of kind KindDuplicateFragment.
	ErrDuplicateFragment = stdErrors.New("element, id and pseudo-element should not occur more then one time inside the selector")
	// ErrOutOfOrderFragment matches every SelectorError of kind KindOutOfOrderFragment.
	ErrOutOfOrderFragment = stdErrors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// SelectorError is returned when a builder call violates fragment uniqueness or ordering.
type SelectorError struct {
	Kind     SelectorErrorKind
	Category string
	Value    string
}

// NewSelectorError constructs a SelectorError for the offending category and value.
func NewSelectorError(kind SelectorErrorKind, category, value string) error {
	return &SelectorError{Kind: kind, Category: category, Value: value}
}

func (e *SelectorError) Error() string {
	if e == nil {
		return ""
	}
	cause := e.Unwrap()
	if cause == nil {
		return fmt.Sprintf("selector error [%s %q]", e.Category, e.Value)
	}
	return fmt.Sprintf("selector error [%s %q]: %s", e.Category, e.Value, cause.Error())
}

// Unwrap maps the kind onto its sentinel so callers can branch with errors.Is.
func (e *SelectorError) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindDuplicateFragment:
		return ErrDuplicateFragment
	case KindOutOfOrderFragment:
		return ErrOutOfOrderFragment
	default:
		return nil
	}
}
