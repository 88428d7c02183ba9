package mcp

import (
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
)

// ControllerFactory builds a fresh submission controller.
// Each tool call gets its own controller, so calls never share form state.
type ControllerFactory func() driving.SubmissionController

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewController builds the controller used by one classify call.
	NewController ControllerFactory

	// Attachments loads files named by file_path.
	Attachments driving.AttachmentService

	// Settings exposes the client settings as a resource.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.NewController == nil {
		return ErrMissingControllerFactory
	}
	if p.Attachments == nil {
		return ErrMissingAttachmentService
	}
	// Settings is optional
	return nil
}
