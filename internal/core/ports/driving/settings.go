package driving

import (
	"time"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// SettingsService manages the client settings.
type SettingsService interface {
	// Get resolves the current client settings, applying defaults.
	Get() (domain.ClientSettings, error)

	// SetEndpoint stores the classification service base URL.
	SetEndpoint(baseURL string) error

	// SetTimeout stores the classify request timeout. Zero disables it.
	SetTimeout(timeout time.Duration) error

	// GetDefaults returns default settings.
	GetDefaults() domain.ClientSettings

	// Path returns where settings are persisted.
	Path() string
}
