package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// ClassifyInput is the input schema for the classify_email tool.
type ClassifyInput struct {
	Text     string `json:"text,omitempty" jsonschema:"the email text to classify"`
	FilePath string `json:"file_path,omitempty" jsonschema:"path to a .txt or .pdf file holding the email"`
}

// ClassifyOutput is the output schema for the classify_email tool.
type ClassifyOutput struct {
	Classification string `json:"classification"`
	Important      bool   `json:"important"`
	Description    string `json:"description"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "classify_email",
		Description: "Classify an email as needing attention or not. " +
			"Pass the email body as text, or a path to a .txt or .pdf file.",
	}, s.handleClassify)
}

// handleClassify handles the classify_email tool invocation.
func (s *Server) handleClassify(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	path := strings.TrimSpace(input.FilePath)
	if path != "" && input.Text != "" {
		return nil, ClassifyOutput{}, ErrAmbiguousContent
	}

	controller := s.ports.NewController()

	if path != "" {
		attachment, err := s.ports.Attachments.Load(ctx, path)
		if err != nil {
			return nil, ClassifyOutput{}, fmt.Errorf("reading %s: %w", path, err)
		}
		// Plain-text previews are only cosmetic, so the ticket is ignored.
		if _, err := controller.SelectFile(attachment); err != nil {
			return nil, ClassifyOutput{}, err
		}
	} else {
		controller.EditText(input.Text)
	}

	logger.Debug("classify_email: %s", describe(controller.Content()))
	label, err := controller.Submit(ctx)
	if err != nil {
		if !domain.IsValidationError(err) {
			logger.Warn("classify_email failed: %v", err)
		}
		// The form message is what a person would have seen.
		if msg := controller.State().ErrorMessage; msg != "" {
			return nil, ClassifyOutput{}, errors.New(msg)
		}
		return nil, ClassifyOutput{}, err
	}

	return nil, ClassifyOutput{
		Classification: label.String(),
		Important:      label.IsImportant(),
		Description:    label.Description(),
	}, nil
}

func describe(content domain.Content) string {
	switch c := content.(type) {
	case *domain.Attachment:
		return fmt.Sprintf("file %s (%s, %d bytes)", c.Name, c.MediaType, c.Size())
	case domain.TextContent:
		return fmt.Sprintf("text (%d bytes)", len(c))
	default:
		return "nothing"
	}
}
