package track

import (
	"errors"
	"fmt"
)

// RequestError represents a failed request against the upstream API: a
// network or protocol failure, a non-2xx HTTP status, or a non-zero code in
// the upstream response envelope.
type RequestError struct {
	URL          string
	StatusCode   int // HTTP status, when the response got that far
	UpstreamCode int // envelope code, when the upstream reported one
	Message      string
	Cause        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request to %s failed: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Message)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// NewRequestError creates a RequestError for the given URL.
func NewRequestError(url, message string) *RequestError {
	return &RequestError{URL: url, Message: message}
}

// WithCause adds a cause to the error.
func (e *RequestError) WithCause(err error) *RequestError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *RequestError) WithStatusCode(code int) *RequestError {
	e.StatusCode = code
	return e
}

// WithUpstreamCode adds an upstream envelope code to the error.
func (e *RequestError) WithUpstreamCode(code int) *RequestError {
	e.UpstreamCode = code
	return e
}

// InvalidTrackingNumberError indicates the upstream rejected or could not
// find a tracking number, with the upstream-provided reason when available.
type InvalidTrackingNumberError struct {
	TrackingNumber string
	Reason         string
}

// Error implements the error interface.
func (e *InvalidTrackingNumberError) Error() string {
	return fmt.Sprintf("%s is invalid: %s", e.TrackingNumber, e.Reason)
}

// Sentinel errors for domain-rule violations.
var (
	// ErrCarrierNotFound indicates a carrier name could not be resolved to
	// an upstream carrier key.
	ErrCarrierNotFound = errors.New("carrier not found")

	// ErrNotSupported indicates the operation is not available on the
	// selected API generation.
	ErrNotSupported = errors.New("operation not supported by this API version")
)
