package supporterrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates malformed input to an operation.
	ErrInvalidArgument = errors.New("support: invalid argument")

	// ErrUnsupportedInflection indicates that no rule could inflect a word.
	ErrUnsupportedInflection = errors.New("support: unsupported inflection")
)

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	// Op is the operation that rejected the argument, e.g. "inflect.Truncate"
	Op string
	// Arg is the argument name
	Arg string
	// Value is the rejected value (may be nil)
	Value any
	// Reason explains the rejection
	Reason string
	// Cause is the underlying error, if any
	Cause error
}

// InvalidArgument builds an *ArgumentError.
func InvalidArgument(op, arg string, value any, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Arg: arg, Value: value, Reason: reason}
}

// Error returns a human-readable error message.
func (e *ArgumentError) Error() string {
	msg := "invalid argument"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Arg != "" {
		msg += " " + e.Arg
		if e.Value != nil {
			msg += fmt.Sprintf("=%v", e.Value)
		}
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// WithCause attaches an underlying error and returns the receiver.
func (e *ArgumentError) WithCause(cause error) *ArgumentError {
	e.Cause = cause
	return e
}

// InflectionError reports a word that matched no exception, rule or default.
type InflectionError struct {
	Op     string
	Word   string
	Locale string
}

// Error returns a human-readable error message.
func (e *InflectionError) Error() string {
	msg := "unsupported inflection"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	msg += fmt.Sprintf(" for %q", e.Word)
	if e.Locale != "" {
		msg += " in locale " + e.Locale
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InflectionError) Is(target error) bool {
	return target == ErrUnsupportedInflection
}
