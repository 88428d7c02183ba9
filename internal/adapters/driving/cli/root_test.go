package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "classe", rootCmd.Use)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"tui", "classify", "settings", "mcp", "version"} {
		assert.True(t, names[name], "%s command should be registered", name)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("endpoint"))
}

func TestRootCmd_VerboseEnablesLogger(t *testing.T) {
	env := setupTestServices(t)

	err := env.execute("--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")

	assert.Equal(t, "1.2.3", version)
}

func TestResolveSettings(t *testing.T) {
	t.Run("defaults without a settings service", func(t *testing.T) {
		settingsService = nil

		settings, err := resolveSettings()

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultClientSettings(), settings)
	})

	t.Run("stored settings", func(t *testing.T) {
		setupTestServices(t)
		require.NoError(t, settingsService.SetEndpoint("http://10.0.0.5:5000"))

		settings, err := resolveSettings()

		require.NoError(t, err)
		assert.Equal(t, "http://10.0.0.5:5000/classify", settings.ClassifyURL())
	})

	t.Run("endpoint override wins", func(t *testing.T) {
		setupTestServices(t)
		require.NoError(t, settingsService.SetEndpoint("http://10.0.0.5:5000"))
		endpointOverride = "https://classify.example.com/"

		settings, err := resolveSettings()

		require.NoError(t, err)
		assert.Equal(t, "https://classify.example.com/classify", settings.ClassifyURL())
	})

	t.Run("invalid override", func(t *testing.T) {
		setupTestServices(t)
		endpointOverride = "localhost:5000"

		_, err := resolveSettings()

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "--endpoint")
	})
}

func TestNewController_NotConfigured(t *testing.T) {
	controllerFactory = nil

	_, _, err := newController()

	assert.ErrorIs(t, err, errNotConfigured)
}
