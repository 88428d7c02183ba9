package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/classe-cli/internal/core/services"
)

// mockClassifier is a mock implementation of driven.Classifier.
type mockClassifier struct {
	label   domain.Classification
	err     error
	calls   int
	content domain.Content
}

func (m *mockClassifier) Classify(_ context.Context, content domain.Content) (domain.Classification, error) {
	m.calls++
	m.content = content
	return m.label, m.err
}

// factory returns a ControllerFactory backed by the classifier.
func (m *mockClassifier) factory() ControllerFactory {
	return func() driving.SubmissionController {
		return services.NewSubmissionController(m)
	}
}

// mockAttachmentService is a mock implementation of driving.AttachmentService.
type mockAttachmentService struct {
	attachments map[string]*domain.Attachment
}

func (m *mockAttachmentService) Load(_ context.Context, path string) (*domain.Attachment, error) {
	if a, ok := m.attachments[path]; ok {
		return a, nil
	}
	return nil, errors.New("no such file or directory")
}

func (m *mockAttachmentService) Preview(_ context.Context, attachment *domain.Attachment) (string, error) {
	return string(attachment.Data), nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.ClientSettings
	err      error
}

func (m *mockSettingsService) Get() (domain.ClientSettings, error) { return m.settings, m.err }
func (m *mockSettingsService) SetEndpoint(string) error            { return m.err }
func (m *mockSettingsService) SetTimeout(time.Duration) error      { return m.err }
func (m *mockSettingsService) GetDefaults() domain.ClientSettings {
	return domain.DefaultClientSettings()
}
func (m *mockSettingsService) Path() string { return "/home/user/.classe/config.toml" }
