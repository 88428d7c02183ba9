// Package cli provides the cobra command tree for classe.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// ControllerFactory builds a submission controller talking to the service
// described by settings.
type ControllerFactory func(settings domain.ClientSettings) driving.SubmissionController

// Services holds the driving ports the commands use.
type Services struct {
	Settings      driving.SettingsService
	Attachments   driving.AttachmentService
	NewController ControllerFactory
}

var (
	version = "dev"

	verbose          bool
	endpointOverride string

	settingsService   driving.SettingsService
	attachmentService driving.AttachmentService
	controllerFactory ControllerFactory
)

// errNotConfigured is returned when a command runs without its services.
var errNotConfigured = errors.New("classification client not configured")

var rootCmd = &cobra.Command{
	Use:   "classe",
	Short: "Classify emails with a remote classification service",
	Long: `classe sends an email to a classification service and shows the label it returns.

Type the email text or attach a .txt or .pdf file, then classify it.
Running classe without a command opens the interactive form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(
		&endpointOverride, "endpoint", "", "classification service base URL for this run (e.g. http://localhost:5000)",
	)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the services used by every command.
func SetServices(services Services) {
	settingsService = services.Settings
	attachmentService = services.Attachments
	controllerFactory = services.NewController
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// resolveSettings reads the stored settings and applies the --endpoint override.
func resolveSettings() (domain.ClientSettings, error) {
	settings := domain.DefaultClientSettings()
	if settingsService != nil {
		stored, err := settingsService.Get()
		if err != nil {
			return settings, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = stored
	}

	if override := strings.TrimSpace(endpointOverride); override != "" {
		if err := domain.ValidateEndpointBaseURL(override); err != nil {
			return settings, fmt.Errorf("--endpoint: %w", err)
		}
		settings.EndpointBaseURL = strings.TrimRight(override, "/")
	}

	logger.Debug("classify endpoint: %s", settings.ClassifyURL())
	return settings, nil
}

// newController builds a controller for the resolved settings.
func newController() (driving.SubmissionController, domain.ClientSettings, error) {
	if controllerFactory == nil {
		return nil, domain.ClientSettings{}, errNotConfigured
	}
	settings, err := resolveSettings()
	if err != nil {
		return nil, settings, err
	}
	return controllerFactory(settings), settings, nil
}

// formError returns the message the form would show for err.
func formError(controller driving.SubmissionController, err error) error {
	if msg := controller.State().ErrorMessage; msg != "" {
		return errors.New(msg)
	}
	return err
}
