package pkgerror

import (
	"errors"
	"net/http"
)

type Code int

const (
	CodeInternal Code = iota
	CodeInvalidInput
	CodeNotFound
	CodeMethodNotAllowed
	CodeUnavailable
)

// StatusCode maps an error code to the HTTP status used on the wire.
func (c Code) StatusCode() int {
	switch c {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	msg  string
	code Code
	err  error
}

// NewBusiness is an error the caller can act on; its message is safe to expose.
func NewBusiness(msg string, code Code) *Error {
	return &Error{msg: msg, code: code}
}

// NewServer wraps an unexpected failure. Only a generic message reaches the client.
func NewServer(err error) *Error {
	return &Error{msg: "internal server error", code: CodeInternal, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Msg() string {
	return e.msg
}

func (e *Error) Code() Code {
	return e.code
}

// From returns err as *Error, wrapping anything unknown as a server error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewServer(err)
}
