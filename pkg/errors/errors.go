package errors

import (
	"errors"
	"fmt"
	"strings"
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

// ValidationError captures theme document validation issues.
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

// ErrorCode identifies the resolution failure categories.
type ErrorCode string

const (
	CodeMalformedValue    ErrorCode = "MALFORMED_VALUE"
	CodeUnknownReference  ErrorCode = "UNKNOWN_REFERENCE"
	CodeNoDefinedState    ErrorCode = "NO_DEFINED_STATE"
	CodeUnresolvableCycle ErrorCode = "UNRESOLVABLE_CYCLE"
)

// Sentinels for errors.Is comparisons. A ThemeError matches a sentinel when
// the codes are equal.
var (
	ErrMalformedValue    = &ThemeError{Code: CodeMalformedValue}
	ErrUnknownReference  = &ThemeError{Code: CodeUnknownReference}
	ErrNoDefinedState    = &ThemeError{Code: CodeNoDefinedState}
	ErrUnresolvableCycle = &ThemeError{Code: CodeUnresolvableCycle}
)

// NoSlot marks a ThemeError that is not tied to a slot position.
const NoSlot = -1

// ThemeError is a failure attributed to one named entry of a theme.
type ThemeError struct {
	Code ErrorCode
	// Kind is the table the entry lives in ("color", "border", "button", ...).
	Kind  string
	Entry string
	// Slot is the slot index inside a composite entry, or NoSlot.
	Slot      int
	SlotLabel string
	Field     string
	// Ref is the name that failed to resolve, when there is one.
	Ref string
	// Path holds the inheritance chain of an unresolvable cycle.
	Path    []string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ThemeError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(string(e.Code))
	if loc := e.Location(); loc != "" {
		b.WriteString(": ")
		b.WriteString(loc)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Path) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Path, " -> "))
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Location renders kind.entry[slot].field, skipping unset parts.
func (e *ThemeError) Location() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(e.Kind)
	if e.Entry != "" {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(e.Entry)
	}
	if e.Slot >= 0 && (e.SlotLabel != "" || e.Entry != "") {
		if e.SlotLabel != "" {
			fmt.Fprintf(&b, "[%s]", e.SlotLabel)
		} else {
			fmt.Fprintf(&b, "[%d]", e.Slot)
		}
	}
	if e.Field != "" {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(e.Field)
	}
	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is a ThemeError with the same code.
func (e *ThemeError) Is(target error) bool {
	var other *ThemeError
	if !errors.As(target, &other) || e == nil || other == nil {
		return false
	}
	return e.Code == other.Code
}

// NewMalformedValue reports a value table entry that could not be parsed.
func NewMalformedValue(kind, entry string, err error) *ThemeError {
	return &ThemeError{Code: CodeMalformedValue, Kind: kind, Entry: entry, Slot: NoSlot, Message: "malformed value", Err: err}
}

// NewUnknownReference reports a field naming an entry missing from its table.
func NewUnknownReference(kind, entry, field, ref string) *ThemeError {
	return &ThemeError{
		Code:    CodeUnknownReference,
		Kind:    kind,
		Entry:   entry,
		Slot:    NoSlot,
		Field:   field,
		Ref:     ref,
		Message: fmt.Sprintf("references unknown name %q", ref),
	}
}

// NewNoDefinedState reports a composite entry without a single resolvable slot.
func NewNoDefinedState(kind, entry string) *ThemeError {
	return &ThemeError{Code: CodeNoDefinedState, Kind: kind, Entry: entry, Slot: NoSlot, Message: "no slot is defined or inherited"}
}

// NewUnresolvableCycle reports an entry whose inheritance never converged.
func NewUnresolvableCycle(kind, entry string, path []string, message string) *ThemeError {
	return &ThemeError{
		Code:    CodeUnresolvableCycle,
		Kind:    kind,
		Entry:   entry,
		Slot:    NoSlot,
		Path:    append([]string(nil), path...),
		Message: message,
	}
}

// AtSlot returns a copy of e attributed to the given slot.
func (e *ThemeError) AtSlot(index int, label string) *ThemeError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Slot = index
	clone.SlotLabel = label
	return &clone
}
