package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of failure categories the client can surface.
// Callers switch on the kind instead of sniffing message strings.
type ErrorKind string

const (
	ErrorKindTransport   ErrorKind = "transport"
	ErrorKindHTTPStatus  ErrorKind = "http_status"
	ErrorKindDecode      ErrorKind = "decode"
	ErrorKindUploadBatch ErrorKind = "upload_batch"
)

// APIError is the uniform failure value for a single round trip. Message is
// always a non-empty human-readable string; Status is zero unless Kind is
// ErrorKindHTTPStatus.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newTransportError(err error) *APIError {
	return &APIError{
		Kind:    ErrorKindTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		Err:     err,
	}
}

func newHTTPError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP error, status %d", status)
	}
	return &APIError{
		Kind:    ErrorKindHTTPStatus,
		Status:  status,
		Message: message,
	}
}

func newDecodeError(err error, message string) *APIError {
	return &APIError{
		Kind:    ErrorKindDecode,
		Message: message,
		Err:     err,
	}
}

// KindOf classifies any error returned by this package. Errors that did not
// originate here count as transport failures.
func KindOf(err error) ErrorKind {
	var batchErr *BatchError
	if errors.As(err, &batchErr) {
		return ErrorKindUploadBatch
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ErrorKindTransport
}

// IsNotFound reports whether err is an HTTP failure with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		apiErr.Kind == ErrorKindHTTPStatus &&
		apiErr.Status == http.StatusNotFound
}
