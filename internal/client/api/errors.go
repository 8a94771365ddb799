package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means no usable response was received at all.
	ErrNetwork = errors.New("network error")
	// ErrTimeout means the request exceeded the configured deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrDecode means the backend answered success but the body was not
	// valid JSON of the expected shape.
	ErrDecode = errors.New("invalid response")
)

// FallbackMessage is used when an error response carries no message field.
const FallbackMessage = "an API error occurred"

// Error is the normalized failure shape every gateway call returns.
// Status is the HTTP status code, 0 when no response was received.
type Error struct {
	Message string
	Status  int
	kind    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// Unwrap exposes the transport sentinel (ErrNetwork, ErrTimeout, ErrDecode)
// when one applies, so callers can match with errors.Is.
func (e *Error) Unwrap() error { return e.kind }

// Message extracts the human-readable message from err if it is an *Error,
// falling back to the given default. Backend messages may legally be absent.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
