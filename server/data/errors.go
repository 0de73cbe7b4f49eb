//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"
	"net/http"

	"github.com/UnifyEM/deadlink-watchdog/common/schema"
)

// Error is a failure that should be reported to the client with Status
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func badRequest(message string) *Error {
	return newError(http.StatusBadRequest, message)
}

func notFound(what string) *Error {
	return newError(http.StatusNotFound, what+" not found")
}

var (
	ErrUnauthorized = newError(http.StatusUnauthorized, "Authentication failed")
	ErrForbidden    = newError(http.StatusForbidden, "Access denied")
)

// Status returns the HTTP status for err. Validation failures are 400
// and anything unrecognized is 500.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	if errors.Is(err, schema.ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Message returns the text for err that is safe to show a client
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var v *schema.ValidationError
	if errors.As(err, &v) {
		return "Validation failed"
	}
	return "Internal server error"
}
