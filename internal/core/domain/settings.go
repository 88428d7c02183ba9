package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpointBaseURL is where the classification service listens by default.
const DefaultEndpointBaseURL = "http://localhost:5000"

// ClassifyPath is the path of the classify operation on the service.
const ClassifyPath = "/classify"

// ClientSettings is the injected configuration of the classification client.
// It is resolved once at startup.
type ClientSettings struct {
	// EndpointBaseURL is the scheme and host of the classification service.
	EndpointBaseURL string

	// Timeout bounds a classify request. Zero means no timeout.
	Timeout time.Duration
}

// DefaultClientSettings returns the settings used when nothing is configured.
func DefaultClientSettings() ClientSettings {
	return ClientSettings{
		EndpointBaseURL: DefaultEndpointBaseURL,
	}
}

// ClassifyURL returns the full URL of the classify operation.
func (s ClientSettings) ClassifyURL() string {
	return strings.TrimRight(s.EndpointBaseURL, "/") + ClassifyPath
}

// Validate checks that the endpoint is an absolute http(s) URL and the timeout is not negative.
func (s ClientSettings) Validate() error {
	if err := ValidateEndpointBaseURL(s.EndpointBaseURL); err != nil {
		return err
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidInput)
	}
	return nil
}

// ValidateEndpointBaseURL checks that raw is an absolute http or https URL.
func ValidateEndpointBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: endpoint base URL is required", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: endpoint base URL: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: endpoint base URL must use http or https", ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: endpoint base URL must include a host", ErrInvalidInput)
	}
	return nil
}
