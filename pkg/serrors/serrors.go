// Package serrors provides semantic errors: sentinel kinds that categorize a
// failure plus an optional wrapped cause and message. Callers match kinds with
// errors.Is at the boundary and map them to transport-level responses.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by the sentinel values created with
// NewKind. It distinguishes semantic categories from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new comparable error kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds used across the service. QueueFull and Timeout are the admission
// control outcomes of the session pool and must stay distinguishable from
// CaptureFailed so the HTTP layer can answer "try again later" instead of
// "request failed".
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates malformed client input, e.g. an unparseable URL.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrQueueFull indicates the admission queue rejected the request.
	ErrQueueFull = NewKind("QUEUE_FULL")
	// ErrTimeout indicates the operation exceeded its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a required backend could not be reached,
	// e.g. a browser session could not be created.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrCaptureFailed indicates a screenshot command against a leased
	// session failed. Per-call, never pool-fatal.
	ErrCaptureFailed = NewKind("CAPTURE_FAILED")
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind sentinel, an optional wrapped cause and an optional
// message. errors.Is and errors.As traverse both the kind and the cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause, enabling errors.Unwrap/Is/As traversal.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches against either the kind sentinel or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }
