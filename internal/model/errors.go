package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Callers match them with errors.Is; the concrete
// values carried alongside live in FieldError.
var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrMissingStartDate    = errors.New("start date missing")
	ErrStartAfterEnd       = errors.New("start date after end date")
	ErrInvalidNetworkURL   = errors.New("invalid social network url")
	ErrMastodonFormat      = errors.New("invalid mastodon username")
	ErrUnresolvableSection = errors.New("section does not match any entry type")
	ErrInvalidThemeName    = errors.New("invalid theme name")
	ErrCustomThemeNotFound = errors.New("custom theme folder not found")
	ErrMissingThemeFile    = errors.New("missing theme file")
	ErrExternalLookup      = errors.New("external identifier not found")
	ErrInvalidField        = errors.New("field validation failed")
)

// FieldError is a validation failure tied to a specific field. Path is the
// location of the offending field ("" when no location exists) and Value the
// offending input rendered as a string.
type FieldError struct {
	Kind    error
	Path    string
	Value   string
	Message string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " (field: %s)", e.Path)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " (value: %s)", e.Value)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error { return e.Kind }

func newFieldError(kind error, path, value, message string) *FieldError {
	return &FieldError{Kind: kind, Path: path, Value: value, Message: message}
}

// NewFieldError builds a FieldError. Exported for the packages that share
// this error taxonomy (the design resolver in particular).
func NewFieldError(kind error, path, value, message string) *FieldError {
	return newFieldError(kind, path, value, message)
}

// SectionError wraps every entry-level failure of a section after its entry
// type has been inferred. The underlying errors are kept, never discarded.
type SectionError struct {
	EntryType string
	Errs      []error
}

func (e *SectionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"there are problems with the entries. cvkit detected the entry type of this section to be %s! The problems are shown below.",
		e.EntryType)
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *SectionError) Unwrap() []error { return e.Errs }
