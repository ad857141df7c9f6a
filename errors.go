package logswap

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode represents specific error types in logswap
type ErrorCode int

const (
	// ErrCodeUnknown represents an unknown error
	ErrCodeUnknown ErrorCode = iota

	// Argument errors
	ErrCodeInvalidArgument

	// File operation errors
	ErrCodeFileOpen
	ErrCodeFileStat
	ErrCodeFileFlush
	ErrCodeFileClose
	ErrCodeFileRotate
	ErrCodeFileLock

	// Handle lifecycle errors
	ErrCodeReleased
)

// Error represents a structured error with context
type Error struct {
	Code ErrorCode
	Op   string // Operation that failed (e.g., "open", "rotate", "flush")
	Path string // File path the operation targeted, if any
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Path == "" {
		if e.Err == nil {
			return fmt.Sprintf("logswap: %s failed", e.Op)
		}
		return fmt.Sprintf("logswap: %s failed: %v", e.Op, e.Err)
	}
	if e.Err == nil {
		return fmt.Sprintf("logswap: %s failed on %s", e.Op, e.Path)
	}
	return fmt.Sprintf("logswap: %s failed on %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two logswap errors by code, so callers can use errors.Is with
// sentinels such as ErrReleased.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code == targetErr.Code
	}
	return e.Err != nil && e.Err == target
}

// NewError creates a new Error
func NewError(code ErrorCode, op, path string, err error) *Error {
	return &Error{
		Code: code,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// ErrReleased is returned by operations invoked on a handle after Release.
var ErrReleased = NewError(ErrCodeReleased, "use", "", errors.New("handle already released"))

// Helper constructors for common errors

// ErrFileOpen creates a file open error
func ErrFileOpen(path string, err error) *Error {
	return NewError(ErrCodeFileOpen, "open", path, err)
}

// ErrFileFlush creates a file flush error
func ErrFileFlush(path string, err error) *Error {
	return NewError(ErrCodeFileFlush, "flush", path, err)
}

// ErrFileRotate creates a file rotation error
func ErrFileRotate(path string, err error) *Error {
	return NewError(ErrCodeFileRotate, "rotate", path, err)
}

// errInvalidArgument creates a validation error for a rejected argument.
// Validation errors are raised before any I/O is attempted.
func errInvalidArgument(op, format string, args ...interface{}) *Error {
	return NewError(ErrCodeInvalidArgument, op, "", errors.Errorf(format, args...))
}

// IsValidationError returns true if err is a logswap validation error.
func IsValidationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidArgument
}
