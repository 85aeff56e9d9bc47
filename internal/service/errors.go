package service

import "errors"

// Failure kinds surfaced across the service boundary. Handlers translate
// these to HTTP statuses with errors.Is; the message carried by the
// wrapping error is safe to show to callers.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUpstream        = errors.New("upstream failure")
)

type taggedError struct {
	kind error
	msg  string
}

func (e *taggedError) Error() string { return e.msg }

func (e *taggedError) Unwrap() error { return e.kind }

func NotFound(msg string) error { return &taggedError{kind: ErrNotFound, msg: msg} }

func Invalid(msg string) error { return &taggedError{kind: ErrValidation, msg: msg} }

func Upstream(msg string) error { return &taggedError{kind: ErrUpstream, msg: msg} }

func Forbidden() error { return &taggedError{kind: ErrForbidden, msg: "not authorized"} }
