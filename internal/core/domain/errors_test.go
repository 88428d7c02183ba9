package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDomainErrors tests that all domain errors are properly defined
func TestDomainErrors(t *testing.T) {
	errs := []error{
		ErrInvalidInput,
		ErrEmptyContent,
		ErrUnsupportedMediaType,
		ErrSubmissionInProgress,
		ErrClassifierUnavailable,
	}

	for _, err := range errs {
		assert.NotNil(t, err)
		assert.NotEmpty(t, err.Error())
	}
}

func TestRequestError_Message(t *testing.T) {
	err := &RequestError{StatusCode: 500, Message: "model unavailable"}
	assert.Equal(t, "model unavailable", err.Error())
}

func TestRequestError_FallsBackToStatus(t *testing.T) {
	err := &RequestError{StatusCode: 502}
	assert.Equal(t, "HTTP error: 502", err.Error())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("classify: %w", &TransportError{Err: cause})

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, TransportFailureMessage, transportErr.Error())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyContent))
	assert.True(t, IsValidationError(fmt.Errorf("attach: %w", ErrUnsupportedMediaType)))
	assert.False(t, IsValidationError(&RequestError{StatusCode: 400}))
	assert.False(t, IsValidationError(nil))
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "", FailureMessage(nil))
	assert.Equal(t, "model unavailable", FailureMessage(&RequestError{Message: "model unavailable"}))
	assert.Equal(t, DefaultFailureMessage, FailureMessage(emptyError{}))
}
