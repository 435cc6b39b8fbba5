package maptoposter

import (
	"errors"
	"fmt"
)

// General error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Geocoding error codes.
const (
	ETRANSPORT    = "transport"
	ESTATUS       = "http_status"
	EDECODE       = "decode"
	ENORESULTS    = "no_results"
	EINVALIDCOORD = "invalid_coordinate"
)

// Theme error codes. ENOTFOUND is shared with the general codes.
const (
	EMALFORMED = "malformed_json"
	ESCHEMA    = "invalid_schema"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string

	// Field names the offending theme field for ESCHEMA errors.
	Field string

	// StatusCode holds the upstream HTTP status for ESTATUS errors.
	StatusCode int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapErrorf is like Errorf but records err as the underlying cause.
// The cause's text is appended to the message.
func WrapErrorf(err error, code string, format string, args ...any) *Error {
	e := Errorf(code, format, args...)
	e.Err = err
	if err != nil {
		e.Message += ": " + err.Error()
	}
	return e
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// ErrorField returns the theme field reported by an ESCHEMA error.
func ErrorField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// ErrorStatusCode returns the HTTP status reported by an ESTATUS error.
func ErrorStatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
