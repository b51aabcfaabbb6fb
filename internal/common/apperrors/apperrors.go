// Package apperrors provides the application error type used across the
// console. It extends the standard error interface with status codes and
// message chaining while staying compatible with errors.Is / errors.As.
package apperrors

import "errors"

// Error is the application error interface. Methods return Error so calls
// can be chained when deriving one error from another.
type Error interface {
	error
	Unwrap() error

	Msg(msg string) Error       // derives a new error, wrapping the original
	Err(errs ...error) Error    // attaches additional causes
	SetStatusCode(int) Error    // sets the HTTP status code
	StatusCode() int            // returns the current status code
}

type appError struct {
	msg        string
	base       error
	wrapped    []error
	statuscode int
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) Unwrap() error {
	return e.base
}

// Msg derives a new error with msg as its message. The receiver becomes the
// base of the new error, so errors.Is against the original still matches.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, e.wrapped...),
		statuscode: e.statuscode,
	}
}

// Err attaches additional causes, keeping the current message.
func (e *appError) Err(errs ...error) Error {
	return &appError{
		msg:        e.msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// SetStatusCode returns a copy with an updated status code. The original is
// unchanged.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is matches against the base error and any attached causes.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrapped {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// New creates a root-level error with the given message.
func New(msg string) Error {
	return &appError{msg: msg}
}
