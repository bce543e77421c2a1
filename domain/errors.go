package domain

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	InvalidInput   ErrorKind = "invalid_input"
	UpstreamError  ErrorKind = "upstream_error"
	TransportError ErrorKind = "transport_error"
	InternalError  ErrorKind = "internal_error"
)

// RequestError is the single error shape that crosses the handler boundary.
// Status is the HTTP status surfaced to the caller; for UpstreamError it
// mirrors the upstream status verbatim.
type RequestError struct {
	Kind         ErrorKind
	Status       int
	Label        string
	UpstreamBody string
	Message      string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewInvalidInput(message string) *RequestError {
	return &RequestError{
		Kind:    InvalidInput,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewUpstreamError(label string, status int, body string) *RequestError {
	return &RequestError{
		Kind:         UpstreamError,
		Status:       status,
		Label:        label,
		UpstreamBody: body,
		Message:      fmt.Sprintf("%s: %s", label, body),
	}
}

func NewTransportError(api string, err error) *RequestError {
	return &RequestError{
		Kind:    TransportError,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Failed to connect to %s: %s", api, err),
	}
}

func NewInternalError(err error) *RequestError {
	return &RequestError{
		Kind:    InternalError,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("An unexpected error occurred: %s", err),
	}
}

// AsRequestError coerces any error into a RequestError, folding unknown
// failures into the InternalError kind.
func AsRequestError(err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	return NewInternalError(err)
}
