package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultClientSettings(t *testing.T) {
	settings := DefaultClientSettings()

	assert.Equal(t, DefaultEndpointBaseURL, settings.EndpointBaseURL)
	assert.Zero(t, settings.Timeout)
	assert.NoError(t, settings.Validate())
}

func TestClientSettings_ClassifyURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5000/classify",
		ClientSettings{EndpointBaseURL: "http://localhost:5000"}.ClassifyURL())
	assert.Equal(t, "https://api.example.com/v1/classify",
		ClientSettings{EndpointBaseURL: "https://api.example.com/v1/"}.ClassifyURL())
}

func TestClientSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings ClientSettings
		wantErr  bool
	}{
		{"default", DefaultClientSettings(), false},
		{"https with timeout", ClientSettings{EndpointBaseURL: "https://x.io", Timeout: time.Second}, false},
		{"empty", ClientSettings{}, true},
		{"no scheme", ClientSettings{EndpointBaseURL: "localhost:5000"}, true},
		{"ftp", ClientSettings{EndpointBaseURL: "ftp://files.example.com"}, true},
		{"no host", ClientSettings{EndpointBaseURL: "http://"}, true},
		{"negative timeout", ClientSettings{EndpointBaseURL: "http://x.io", Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
