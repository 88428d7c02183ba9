package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/messages"
)

func TestTUICmd_Exists(t *testing.T) {
	// Verify the tui command is registered
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_ShortDescription(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_HelpOutput(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"tui", "--help"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "interactive terminal user interface")
	assert.Contains(t, output, "Controls:")
}

func TestNewTUIApp(t *testing.T) {
	setupTestServices(t)

	app, err := newTUIApp(tuiCmd)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewClassify, app.CurrentView())
}

func TestNewTUIApp_NotConfigured(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{})

	app, err := newTUIApp(tuiCmd)

	assert.ErrorIs(t, err, errNotConfigured)
	assert.Nil(t, app)
}

func TestNewTUIApp_MissingAttachments(t *testing.T) {
	setupTestServices(t)
	SetServices(Services{
		Settings:      settingsService,
		NewController: controllerFactory,
	})

	app, err := newTUIApp(tuiCmd)

	assert.ErrorIs(t, err, tui.ErrMissingAttachmentService)
	assert.Nil(t, app)
}
