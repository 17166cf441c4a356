// Package errors defines the structured application error type and the
// error taxonomy used across the inquiry pipeline: validation failures are
// user-correctable (400), while malformed requests, missing deployment
// configuration and delivery failures are operational faults (500).
package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	MalformedError     ErrorType = "MALFORMED_REQUEST"
	ConfigurationError ErrorType = "CONFIGURATION_MISSING"
	DeliveryError      ErrorType = "DELIVERY_FAILED"
	ServerError        ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped raw error, if any.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return getHTTPStatus(e.Type)
	}
	return e.HTTPStatus
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case MalformedError, ConfigurationError, DeliveryError, ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a missing or malformed user-supplied field.
// The message is what the HTTP caller sees.
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingField reports the first absent required field of a payload,
// using the exact "Missing: <field>" message of the registration contract.
func MissingField(field string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    fmt.Sprintf("Missing: %s", field),
		Detail:     fmt.Sprintf("required field %q is empty after trimming", field),
		HTTPStatus: http.StatusBadRequest,
	}
}

// MalformedRequest reports an unparseable request body. Surfaced to the
// caller as a generic server error, matching the original endpoint behavior.
func MalformedRequest(err error) *AppError {
	return &AppError{
		Type:       MalformedError,
		Message:    "Invalid request body",
		Detail:     err.Error(),
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// ConfigurationMissing reports absent deployment-level mail settings.
// This is a deployment fault, distinguished from validation failures so
// operators can tell misconfiguration apart from user error.
func ConfigurationMissing() *AppError {
	return &AppError{
		Type:       ConfigurationError,
		Message:    "Email environment variables are missing.",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// DeliveryFailed wraps a mail transport failure. The transport's message is
// kept intact, since the caller's only recourse is to resubmit.
func DeliveryFailed(err error) *AppError {
	return &AppError{
		Type:       DeliveryError,
		Message:    err.Error(),
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// IsType reports whether err is an *AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == errType
}
