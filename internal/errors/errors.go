// Package errors is the one errors import for the service: stdlib matching
// plus pkg/errors stack capture at the infrastructure edges.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack unless err already carries one.
func WithStack(err error) error {
	if err == nil || HasStack(err) {
		return err
	}

	return pkgerrors.WithStack(err)
}

// Errorf formats a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// HasStack reports whether any error in err's chain carries a stack trace.
func HasStack(err error) bool {
	var tracer stackTracer

	return stderrors.As(err, &tracer)
}

// Verbose renders err for logs, including the stack trace when present.
func Verbose(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
