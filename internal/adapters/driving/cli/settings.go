package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

var errNoSettingsService = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the classification service endpoint and request timeout.

Settings are read once at startup. Use subcommands to change them or run the
interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsEndpointCmd = &cobra.Command{
	Use:   "endpoint [url]",
	Short: "Set the classification service base URL",
	Long: `Set the base URL of the classification service. Requests go to {url}/classify.

Example:
  classe settings endpoint http://localhost:5000`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsEndpoint,
}

var settingsTimeoutCmd = &cobra.Command{
	Use:   "timeout [seconds]",
	Short: "Set the request timeout",
	Long:  `Set how long a classify request may take, in whole seconds. 0 disables the timeout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTimeout,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsEndpointCmd)
	settingsCmd.AddCommand(settingsTimeoutCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Classifier]")
	cmd.Printf("  Base URL: %s\n", settings.EndpointBaseURL)
	cmd.Printf("  Endpoint: %s\n", settings.ClassifyURL())
	cmd.Printf("  Timeout: %s\n", formatTimeout(settings.Timeout))
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsEndpoint(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	if err := settingsService.SetEndpoint(args[0]); err != nil {
		return fmt.Errorf("failed to set endpoint: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Endpoint set to: %s\n", settings.ClassifyURL())
	return nil
}

func runSettingsTimeout(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	timeout, err := parseTimeout(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout: %w", err)
	}

	cmd.Printf("Timeout set to: %s\n", formatTimeout(timeout))
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.SetEndpoint(defaults.EndpointBaseURL); err != nil {
		return fmt.Errorf("failed to reset endpoint: %w", err)
	}
	if err := settingsService.SetTimeout(defaults.Timeout); err != nil {
		return fmt.Errorf("failed to reset timeout: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("classe Settings Wizard")
	cmd.Println("======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Endpoint
	cmd.Println("Step 1: Classification Service")
	cmd.Println("------------------------------")
	cmd.Printf("Base URL [%s]: ", current.EndpointBaseURL)
	endpoint := readLine(reader)
	if endpoint == "" {
		endpoint = current.EndpointBaseURL
	}
	if err := settingsService.SetEndpoint(endpoint); err != nil {
		return fmt.Errorf("failed to set endpoint: %w", err)
	}
	cmd.Println()

	// Step 2: Timeout
	cmd.Println("Step 2: Request Timeout")
	cmd.Println("-----------------------")
	cmd.Printf("Seconds, 0 for none [%d]: ", int(current.Timeout.Seconds()))
	timeout := current.Timeout
	if input := readLine(reader); input != "" {
		timeout, err = parseTimeout(input)
		if err != nil {
			return err
		}
	}
	if err := settingsService.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout: %w", err)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Printf("Settings saved to %s\n", settingsService.Path())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseTimeout parses a whole, non-negative number of seconds.
func parseTimeout(input string) (time.Duration, error) {
	seconds, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("%w: timeout must be a whole number of seconds", domain.ErrInvalidInput)
	}
	return time.Duration(seconds) * time.Second, nil
}

func formatTimeout(timeout time.Duration) string {
	if timeout <= 0 {
		return "none"
	}
	return timeout.String()
}
