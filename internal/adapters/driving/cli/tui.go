package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// debugLogName is where verbose logs go while the terminal UI owns the screen.
const debugLogName = "debug.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for classe.

The form takes either typed email text or an attached .txt or .pdf file,
sends it to the classification service and shows the returned label.

Controls:
  ctrl+s - Classify
  ctrl+o - Attach a file
  ctrl+r - Clear the form
  f2     - Settings
  f1     - Toggle help
  ctrl+c - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}

	if logger.IsVerbose() {
		closeLog := redirectLogs()
		defer closeLog()
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp builds the form for the resolved settings.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	controller, settings, err := newController()
	if err != nil {
		return nil, err
	}

	ports := tui.NewPorts(controller, attachmentService, settingsService)
	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.WithContext(ctx).WithEndpoint(settings.ClassifyURL()), nil
}

// redirectLogs sends verbose logs to a file next to the config file.
// Logs are dropped when the file cannot be opened.
func redirectLogs() func() {
	dir := os.TempDir()
	if settingsService != nil {
		dir = filepath.Dir(settingsService.Path())
	}

	f, err := os.OpenFile(filepath.Join(dir, debugLogName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.SetVerbose(false)
		return func() {}
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close() //nolint:errcheck
	}
}
