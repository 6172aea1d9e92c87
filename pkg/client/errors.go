package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError is returned for 400 and 422 responses.
type ValidationError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d): %s", e.StatusCode, e.Message)
}

// NetworkError wraps a transport failure; no response was received.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return "not found: " + e.Message }

// AuthError is returned for 401 and 403 responses.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("not authorized (%d): %s", e.StatusCode, e.Message)
}

// APIError covers every other non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindValidation ErrorKind = "validation"
	KindNetwork    ErrorKind = "network"
	KindNotFound   ErrorKind = "not_found"
	KindAuth       ErrorKind = "auth"
	KindAPI        ErrorKind = "api"
	KindUnknown    ErrorKind = "unknown"
)

// Kind classifies err for display.
func Kind(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var (
		validation *ValidationError
		network    *NetworkError
		notFound   *NotFoundError
		auth       *AuthError
		api        *APIError
	)
	switch {
	case errors.As(err, &validation):
		return KindValidation
	case errors.As(err, &network):
		return KindNetwork
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &auth):
		return KindAuth
	case errors.As(err, &api):
		return KindAPI
	}
	return KindUnknown
}

func errorFromStatus(code int, message string, fields map[string]string) error {
	if message == "" {
		message = http.StatusText(code)
	}
	switch {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		return &ValidationError{StatusCode: code, Message: message, Fields: fields}
	case code == http.StatusNotFound:
		return &NotFoundError{Message: message}
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return &AuthError{StatusCode: code, Message: message}
	}
	return &APIError{StatusCode: code, Message: message}
}
