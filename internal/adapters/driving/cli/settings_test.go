package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

func TestSettingsCmd_ShowDefaults(t *testing.T) {
	env := setupTestServices(t)

	err := env.execute("settings")

	require.NoError(t, err)
	output := env.out.String()
	assert.Contains(t, output, "Base URL: http://localhost:5000")
	assert.Contains(t, output, "Endpoint: http://localhost:5000/classify")
	assert.Contains(t, output, "Timeout: none")
	assert.Contains(t, output, "Config file: :memory:")
}

func TestSettingsCmd_Endpoint(t *testing.T) {
	env := setupTestServices(t)

	err := env.execute("settings", "endpoint", "http://10.0.0.5:5000/")

	require.NoError(t, err)
	assert.Contains(t, env.out.String(), "Endpoint set to: http://10.0.0.5:5000/classify")
	assert.Equal(t, "http://10.0.0.5:5000", env.store.GetString("classifier.endpoint_base_url"))
}

func TestSettingsCmd_EndpointInvalid(t *testing.T) {
	env := setupTestServices(t)

	err := env.execute("settings", "endpoint", "ftp://example.com")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_Timeout(t *testing.T) {
	env := setupTestServices(t)

	err := env.execute("settings", "timeout", "45")

	require.NoError(t, err)
	assert.Contains(t, env.out.String(), "Timeout set to: 45s")
	assert.Equal(t, 45, env.store.GetInt("classifier.timeout_seconds"))
}

func TestSettingsCmd_TimeoutInvalid(t *testing.T) {
	tests := []string{"-1", "ten", "1.5"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			env := setupTestServices(t)

			err := env.execute("settings", "timeout", "--", input)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsCmd_Reset(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, env.execute("settings", "endpoint", "http://10.0.0.5:5000"))
	require.NoError(t, env.execute("settings", "timeout", "30"))

	err := env.execute("settings", "reset")

	require.NoError(t, err)
	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultClientSettings(), settings)
}

func TestSettingsCmd_Wizard(t *testing.T) {
	env := setupTestServices(t)
	rootCmd.SetIn(strings.NewReader("https://classify.example.com\n20\n"))

	err := env.execute("settings", "wizard")

	require.NoError(t, err)
	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "https://classify.example.com", settings.EndpointBaseURL)
	assert.Equal(t, 20*time.Second, settings.Timeout)
	assert.Contains(t, env.out.String(), "Configuration Complete!")
}

func TestSettingsCmd_WizardKeepsCurrentValues(t *testing.T) {
	env := setupTestServices(t)
	require.NoError(t, settingsService.SetEndpoint("http://10.0.0.5:5000"))
	rootCmd.SetIn(strings.NewReader("\n\n"))

	err := env.execute("settings", "wizard")

	require.NoError(t, err)
	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:5000", settings.EndpointBaseURL)
	assert.Zero(t, settings.Timeout)
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{})

	rootCmd.SetArgs([]string{"settings", "show"})
	err := rootCmd.Execute()

	assert.ErrorIs(t, err, errNoSettingsService)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{input: "0", expected: 0},
		{input: " 90 ", expected: 90 * time.Second},
		{input: "-5", wantErr: true},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			timeout, err := parseTimeout(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, timeout)
		})
	}
}

func TestFormatTimeout(t *testing.T) {
	assert.Equal(t, "none", formatTimeout(0))
	assert.Equal(t, "1m30s", formatTimeout(90*time.Second))
}
