package api

import "net/http"

// ClientError is a recoverable, caller-caused failure. It maps directly to an
// HTTP status and a user-facing message; anything that is not a ClientError is
// logged and collapsed to a generic 500 by writeFail.
type ClientError struct {
	Status  int
	Message string
}

func (e *ClientError) Error() string { return e.Message }

func errInvariant(msg string) *ClientError {
	return &ClientError{Status: http.StatusBadRequest, Message: msg}
}

func errNotFound(msg string) *ClientError {
	return &ClientError{Status: http.StatusNotFound, Message: msg}
}

func errUnauthenticated(msg string) *ClientError {
	return &ClientError{Status: http.StatusUnauthorized, Message: msg}
}

func errForbidden(msg string) *ClientError {
	return &ClientError{Status: http.StatusForbidden, Message: msg}
}
