package store

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes store failures.
type ErrorCode string

const (
	// ErrCodeConfig indicates the storage root cannot be determined or created.
	ErrCodeConfig ErrorCode = "CONFIG"

	// ErrCodeEncoding indicates a computed path cannot be represented as text.
	ErrCodeEncoding ErrorCode = "ENCODING"

	// ErrCodeNoActiveLog indicates the root contains no parseable log.
	ErrCodeNoActiveLog ErrorCode = "NO_ACTIVE_LOG"

	// ErrCodeIO covers any other open, read or write failure.
	ErrCodeIO ErrorCode = "IO"
)

// ErrNoActiveLog is returned (wrapped in an *Error) when append or replay is
// requested and no log exists in the storage root.
var ErrNoActiveLog = errors.New("no active log")

// Error is a typed store failure.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the store operation that failed (start, append, read, ...).
	Op string

	// Path is the file or directory involved, if any.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s %s: %v", e.Code, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not an *Error.
// Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsNoActiveLog returns true if err reports a missing active log.
func IsNoActiveLog(err error) bool {
	return errors.Is(err, ErrNoActiveLog)
}

func newError(code ErrorCode, op, path string, err error) *Error {
	return &Error{Code: code, Op: op, Path: path, Err: err}
}
