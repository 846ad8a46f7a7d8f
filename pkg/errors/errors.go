// Package errors defines the coded errors shared by the report pipeline,
// the CLI and the HTTP server.
//
// Every code belongs to a [Class]. The server turns classes into HTTP
// statuses and the CLI turns them into exit codes, so a new code only
// needs an entry in the class table.
//
//	err := errors.New(errors.ErrCodeInvalidRobot, "robot name %q", name)
//	errors.Is(err, errors.ErrCodeInvalidRobot) // true
//	errors.ClassOf(err)                        // errors.ClassInvalid
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidRobot  Code = "INVALID_ROBOT"
	ErrCodeInvalidMatrix Code = "INVALID_MATRIX"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidKind   Code = "INVALID_REPORT_KIND"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeTemplateNotFound Code = "TEMPLATE_NOT_FOUND"

	ErrCodeWrite       Code = "WRITE_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Class groups codes by who has to act: the caller fixes ClassInvalid and
// ClassNotFound, the operator fixes ClassWrite.
type Class int

const (
	ClassInternal Class = iota
	ClassInvalid
	ClassNotFound
	ClassWrite
	ClassUnsupported
)

var classes = map[Code]Class{
	ErrCodeInvalidInput:     ClassInvalid,
	ErrCodeInvalidRobot:     ClassInvalid,
	ErrCodeInvalidMatrix:    ClassInvalid,
	ErrCodeInvalidGraph:     ClassInvalid,
	ErrCodeInvalidFormat:    ClassInvalid,
	ErrCodeInvalidKind:      ClassInvalid,
	ErrCodeInvalidPath:      ClassInvalid,
	ErrCodeInvalidConfig:    ClassInvalid,
	ErrCodeNotFound:         ClassNotFound,
	ErrCodeFileNotFound:     ClassNotFound,
	ErrCodeTemplateNotFound: ClassNotFound,
	ErrCodeWrite:            ClassWrite,
	ErrCodeUnsupported:      ClassUnsupported,
}

// Class returns the class of c. Unknown codes are internal.
func (c Code) Class() Class { return classes[c] }

// Error carries a code, a message for the user and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// ClassOf returns the class of err. Errors without a code are internal.
func ClassOf(err error) Class {
	return GetCode(err).Class()
}

// IsInvalid reports whether err was caused by bad input.
func IsInvalid(err error) bool { return ClassOf(err) == ClassInvalid }

// UserMessage returns the message of a coded error without its code, or
// err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
