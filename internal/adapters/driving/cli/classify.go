package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/classe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// maxStdinBytes caps how much piped input is read.
const maxStdinBytes = 10 << 20

var (
	classifyFile string
	classifyJSON bool
)

var errTextAndFile = errors.New("provide either the email text or --file, not both")

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify one email",
	Long: `Sends one email to the classification service and prints the label.

The email is taken from the argument, from --file (.txt or .pdf), or from
standard input when it is piped. Only one of them is sent.

Examples:
  classe classify "Can you review the attached contract today?"
  classe classify --file inbox/notes.pdf
  cat mail.txt | classe classify --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyFile, "file", "f", "", "path to a .txt or .pdf file")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(classifyCmd)
}

// classifyOutput is the JSON shape of a result.
type classifyOutput struct {
	Classification string `json:"classification"`
	Important      bool   `json:"important"`
	Description    string `json:"description"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifyFile != "" && len(args) > 0 {
		return errTextAndFile
	}

	controller, _, err := newController()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if classifyFile != "" {
		if attachmentService == nil {
			return errNotConfigured
		}
		attachment, err := attachmentService.Load(ctx, classifyFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", classifyFile, err)
		}
		// The text preview only matters to the interactive form.
		if _, err := controller.SelectFile(attachment); err != nil {
			return formError(controller, err)
		}
	} else {
		text, err := emailText(cmd, args)
		if err != nil {
			return err
		}
		controller.EditText(text)
	}

	logger.Section("Classify")
	label, err := controller.Submit(ctx)
	if err != nil {
		logFailure(err)
		return formError(controller, err)
	}

	if classifyJSON {
		return outputClassifyJSON(cmd, label)
	}
	outputClassifyText(cmd, label)
	return nil
}

// logFailure records why a submission failed. Validation errors never left
// the machine, so only the others are warnings.
func logFailure(err error) {
	if domain.IsValidationError(err) {
		logger.Debug("submission rejected: %v", err)
		return
	}
	logger.Warn("classification failed: %v", err)
}

// emailText returns the argument, or piped standard input when there is none.
func emailText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	in := cmd.InOrStdin()
	if !stdinPiped(in) {
		return "", nil
	}
	data, err := io.ReadAll(io.LimitReader(in, maxStdinBytes))
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	return string(data), nil
}

// stdinPiped reports whether in carries data rather than an interactive terminal.
func stdinPiped(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd()))
}

func outputClassifyJSON(cmd *cobra.Command, label domain.Classification) error {
	data, err := json.MarshalIndent(classifyOutput{
		Classification: label.String(),
		Important:      label.IsImportant(),
		Description:    label.Description(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputClassifyText(cmd *cobra.Command, label domain.Classification) {
	s := styles.DefaultStyles()
	cmd.Printf("Classification: %s\n", s.Label(label.IsImportant()).Render(label.String()))
	cmd.Println(label.Description())
}
