package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Validation Errors.

	// ErrEmptyContent indicates a submit with neither text nor attachment.
	ErrEmptyContent = errors.New("please type the email text or attach a file")

	// ErrUnsupportedMediaType indicates an attachment that is neither plain text nor PDF.
	ErrUnsupportedMediaType = errors.New("invalid file format, please attach a .txt or .pdf file")

	// ErrSubmissionInProgress indicates a submit while another request is in flight.
	ErrSubmissionInProgress = errors.New("a classification is already in progress")

	// ErrClassifierUnavailable indicates no classifier was configured.
	ErrClassifierUnavailable = errors.New("classification service not configured")
)

// Messages shown for validation failures.
const (
	EmptyContentMessage         = "Please type the email text or attach a file."
	UnsupportedMediaTypeMessage = "Invalid file format. Please attach a .txt or .pdf file."
)

// DefaultFailureMessage is shown when a failed submission carries no message.
const DefaultFailureMessage = "Failed to connect to the classification service. Please try again."

// TransportFailureMessage is shown when the classification service could not be reached.
const TransportFailureMessage = "Could not reach the classification service. Please try again."

// RequestError indicates the classification service rejected the call.
type RequestError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the user-facing message, taken from the response body when available.
	Message string
}

// Error returns the user-facing message.
func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

// TransportError indicates the classify call never completed.
type TransportError struct {
	// Err is the underlying transport failure.
	Err error
}

// Error returns the generic connectivity message. The cause stays
// reachable through Unwrap for logging.
func (e *TransportError) Error() string {
	return TransportFailureMessage
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was detected locally, before any network call.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyContent) || errors.Is(err, ErrUnsupportedMediaType)
}

// FailureMessage converts a submission failure into the message shown to the user.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return DefaultFailureMessage
}
