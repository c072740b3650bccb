// Package extract sends document text to the language-understanding service
// and parses its structured response into career records.
package extract

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when the document text is empty after
// whitespace normalization. This is a local validation failure; no service
// call is made.
var ErrEmptyDocument = errors.New("document has no text content to extract")

// ServiceError represents a transport or service-level failure from the
// understanding service. These are retried with backoff up to the attempt cap.
type ServiceError struct {
	Attempts int
	Cause    error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("extraction service failed after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ParseError represents a malformed or schema-violating service response.
// Retrying an already-wrong response wastes calls, so these surface
// immediately.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction response parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction response parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
