// Package errors provides error types and utilities for depboot.
// It extends the standard errors package with additional context and wrapping capabilities.
package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates an operation was stopped by cancellation
	ErrCanceled = errors.New("operation canceled")

	// ErrNotFound indicates a requested file or executable was not found
	ErrNotFound = errors.New("resource not found")

	// ErrPermissionDenied indicates the process lacks rights for an operation
	ErrPermissionDenied = errors.New("permission denied")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := persist(report); err != nil {
//	    return errors.Wrap(err, "failed to persist report")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Classify maps filesystem and context errors onto the package sentinels,
// keeping the original error in the chain. Unknown errors are returned unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return Join(ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return Join(ErrCanceled, err)
	case errors.Is(err, fs.ErrPermission):
		return Join(ErrPermissionDenied, err)
	case errors.Is(err, fs.ErrNotExist):
		return Join(ErrNotFound, err)
	default:
		return err
	}
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsCanceled reports whether the error is a cancellation error
func IsCanceled(err error) bool {
	return Is(err, ErrCanceled)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsPermissionDenied reports whether the error is a permission error
func IsPermissionDenied(err error) bool {
	return Is(err, ErrPermissionDenied)
}
