package pkg

// Sentinel errors shared by the CLI and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrReadSource is returned when reading a template source fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadSource = MakeErrorf("failed to read template source")

// ErrReadEnvFile is returned when reading an environment file fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadEnvFile = MakeErrorf("failed to read environment file")

// ErrDecodeEnvFile is returned when decoding an environment file fails.
//
// This error should be wrapped with the underlying YAML error to preserve
// the error chain and detailed decode error information.
var ErrDecodeEnvFile = MakeErrorf("failed to decode environment file")

// ErrNoTemplate is returned when no template source is provided.
var ErrNoTemplate = MakeErrorf("no template source provided")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target's chain is a prefix of the receiver's chain.
// Wrapping a sentinel appends to its chain, so the sentinel remains a
// prefix of every error derived from it.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !errors.Is(e[i], t[i]) {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
