// Package errors defines the coded errors shared by the CLI and the API.
//
// Every user-facing failure carries a [Code] so callers can branch on the
// kind of failure without parsing message text, and so the HTTP layer can
// map failures to status codes. Messages are written for users; causes
// are preserved for logs.
//
// Creating and inspecting errors:
//
//	err := errors.New(errors.ErrCodeInvalidLength, "invalid length: %s", raw)
//	err = errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
//
//	if errors.Is(err, errors.ErrCodeInvalidManifest) {
//	    fmt.Println(errors.UserMessage(err))
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling.
type Code string

// Error codes, grouped by failure class.
const (
	// Manifest and input validation.
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidLength   Code = "INVALID_LENGTH"
	ErrCodeInvalidBlock    Code = "INVALID_BLOCK"
	ErrCodeInvalidPage     Code = "INVALID_PAGE"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Missing resources.
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeDocumentNotFound Code = "DOCUMENT_NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"

	// Remote manifest fetching.
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Everything else.
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a code with a message and an optional cause.
type Error struct {
	Code    Code   // failure class
	Message string // user-facing description
	Cause   error  // wrapped lower-level error, may be nil
}

// Error formats the error as "CODE: message", with the cause appended
// when present.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to the stdlib errors package.
func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error from a code and a printf-style message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that records cause underneath the new message.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any error in err's chain is an *Error carrying the
// given code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or the
// empty string when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in err's chain,
// without the code prefix. Other errors format as themselves.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
