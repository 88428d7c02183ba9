package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEndpointBaseURL = "classifier.endpoint_base_url"
	keyTimeoutSeconds  = "classifier.timeout_seconds"
)

// SettingsService manages client settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current client settings. Missing or invalid stored values
// fall back to the defaults.
func (s *SettingsService) Get() (domain.ClientSettings, error) {
	settings := s.GetDefaults()

	if endpoint := strings.TrimSpace(s.configStore.GetString(keyEndpointBaseURL)); endpoint != "" {
		if err := domain.ValidateEndpointBaseURL(endpoint); err == nil {
			settings.EndpointBaseURL = endpoint
		}
	}

	if seconds := s.configStore.GetInt(keyTimeoutSeconds); seconds > 0 {
		settings.Timeout = time.Duration(seconds) * time.Second
	}

	return settings, nil
}

// SetEndpoint validates and stores the classification service base URL.
func (s *SettingsService) SetEndpoint(baseURL string) error {
	baseURL = strings.TrimSpace(baseURL)
	if err := domain.ValidateEndpointBaseURL(baseURL); err != nil {
		return err
	}
	if err := s.configStore.Set(keyEndpointBaseURL, strings.TrimRight(baseURL, "/")); err != nil {
		return fmt.Errorf("save endpoint base_url: %w", err)
	}
	return nil
}

// SetTimeout stores the request timeout, rounded down to whole seconds.
func (s *SettingsService) SetTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyTimeoutSeconds, int(timeout/time.Second)); err != nil {
		return fmt.Errorf("save timeout: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.ClientSettings {
	return domain.DefaultClientSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
