// Package apperr provides coded errors for the scanner, planner and session.
// A code classifies the failure so front ends can decide how to present it
// without matching on message text.
package apperr

import (
	"errors"
	"io/fs"
)

// ErrorCode represents a specific error condition.
type ErrorCode string

const (
	// CodeInvalidInput indicates user-supplied parameters were rejected.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeNotFound indicates a folder or file does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a rename target is already taken.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeForbidden indicates the filesystem denied access.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeIO indicates any other filesystem failure.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeUnknown is reported for errors that carry no code.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Error is an error with a code, a human readable message and an optional
// underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code and message.
// Sentinel errors declared with New therefore match wrapped copies of
// themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// New returns an error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a code and message. It returns nil if err is nil.
func Wrap(code ErrorCode, message string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// FromFS classifies a filesystem error by its cause.
func FromFS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	message := op + " " + path
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Wrap(CodeNotFound, message, err)
	case errors.Is(err, fs.ErrPermission):
		return Wrap(CodeForbidden, message, err)
	case errors.Is(err, fs.ErrExist):
		return Wrap(CodeAlreadyExists, message, err)
	default:
		return Wrap(CodeIO, message, err)
	}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeUnknown.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
