// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/classe-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewClassify is the submission form.
	ViewClassify ViewType = iota
	// ViewSettings edits the classification service settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewClassify:
		return "classify"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// AttachmentLoaded carries a file read from disk after the user picked it.
type AttachmentLoaded struct {
	Path       string
	Attachment *domain.Attachment
	Err        error
}

// PreviewDecoded carries the decoded text of a plain-text attachment.
type PreviewDecoded struct {
	Ticket domain.PreviewTicket
	Text   string
	Err    error
}

// ClassifyCompleted carries the outcome of a classify request.
type ClassifyCompleted struct {
	Result domain.SubmissionResult
}

// SettingsLoaded carries the client settings.
type SettingsLoaded struct {
	Settings domain.ClientSettings
	Path     string
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Settings domain.ClientSettings
	Err      error
}
