package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/classe-cli/internal/adapters/driven/attachment/filesystem"
	"github.com/custodia-labs/classe-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/classe-cli/internal/core/services"
	"github.com/custodia-labs/classe-cli/internal/logger"
)

// mockClassifier implements driven.Classifier and records what it was sent.
type mockClassifier struct {
	label    domain.Classification
	err      error
	contents []domain.Content
	settings []domain.ClientSettings
}

func (m *mockClassifier) Classify(_ context.Context, content domain.Content) (domain.Classification, error) {
	m.contents = append(m.contents, content)
	if m.err != nil {
		return "", m.err
	}
	if m.label == "" {
		return domain.LabelImportant, nil
	}
	return m.label, nil
}

// testEnv holds the services wired into the command tree for one test.
type testEnv struct {
	classifier *mockClassifier
	store      *memory.ConfigStore
	out        *bytes.Buffer
}

// setupTestServices wires real services over an in-memory store and a mock
// classifier, and restores the command tree afterwards.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		classifier: &mockClassifier{},
		store:      memory.NewConfigStore(),
		out:        new(bytes.Buffer),
	}

	SetServices(Services{
		Settings:    services.NewSettingsService(env.store),
		Attachments: services.NewAttachmentService(filesystem.NewLoader(), filesystem.NewTextDecoder()),
		NewController: func(settings domain.ClientSettings) driving.SubmissionController {
			env.classifier.settings = append(env.classifier.settings, settings)
			return services.NewSubmissionController(env.classifier)
		},
	})

	rootCmd.SetOut(env.out)
	rootCmd.SetErr(env.out)

	t.Cleanup(func() {
		SetServices(Services{})
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		classifyFile = ""
		classifyJSON = false
		endpointOverride = ""
		verbose = false
		logger.SetVerbose(false)
	})

	return env
}

// execute runs the root command with args.
func (e *testEnv) execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
