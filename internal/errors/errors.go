// Package errors provides sentinel errors and error types for boardstate.
// It separates bad external input (ValidationError) from caller logic bugs
// (InvariantError) while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position record.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrOutOfBounds indicates a row or column outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvariantViolation indicates a request that can only come from a
	// logic bug in the caller, such as moving from an empty square.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrIllegalMove indicates move text that cannot be decoded.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSessionNotFound indicates an unknown board session id.
	ErrSessionNotFound = errors.New("session not found")
)

// ValidationError describes which field of a position record was rejected
// and why. It always unwraps to ErrInvalidFEN.
type ValidationError struct {
	Field  int    // 1-based field number in the record (0 for the record as a whole)
	Name   string // Human-readable field name
	Value  string // The offending text
	Reason string
}

// Error returns a formatted error message naming the field.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrInvalidFEN.Error())
	sb.WriteString(": ")
	if e.Field > 0 {
		fmt.Fprintf(&sb, "field %d (%s)", e.Field, e.Name)
	} else {
		sb.WriteString("record")
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " %q", e.Value)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

// Unwrap returns ErrInvalidFEN.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidFEN
}

// InvariantError reports an operation applied to a board state it can never
// legitimately see. It unwraps to ErrInvariantViolation.
type InvariantError struct {
	Op     string // Operation name, e.g. "make move"
	Square string // Square involved, in notation (if applicable)
	Reason string
}

// Error returns the operation, square and reason.
func (e *InvariantError) Error() string {
	parts := []string{e.Op}
	if e.Square != "" {
		parts = append(parts, e.Square)
	}
	msg := strings.Join(parts, " ")
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return fmt.Sprintf("%s: %v", msg, ErrInvariantViolation)
}

// Unwrap returns ErrInvariantViolation.
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// RecordError wraps errors with input context: the record's position in the
// batch and where it was read from.
type RecordError struct {
	Err   error  // The underlying error
	Index int    // 0-based record index across all inputs
	File  string // Source file name (if known)
	Line  int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *RecordError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	parts = append(parts, fmt.Sprintf("record %d", e.Index+1))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the RecordError wrapper.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
// It re-exports the standard library function so callers importing this
// package under the name errors keep access to it.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
