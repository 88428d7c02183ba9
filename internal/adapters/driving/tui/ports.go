// Package tui provides an interactive terminal user interface for classe.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Submission owns the form state and performs classify requests.
	Submission driving.SubmissionController

	// Attachments reads picked files and decodes plain-text previews.
	Attachments driving.AttachmentService

	// Settings manages the classification service settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	submission driving.SubmissionController,
	attachments driving.AttachmentService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Submission:  submission,
		Attachments: attachments,
		Settings:    settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Submission == nil {
		return ErrMissingSubmissionController
	}
	if p.Attachments == nil {
		return ErrMissingAttachmentService
	}
	return nil
}
