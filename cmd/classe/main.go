// Command classe classifies emails through a remote classification service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/classe-cli/internal/adapters/driven/attachment/filesystem"
	"github.com/custodia-labs/classe-cli/internal/adapters/driven/classifier/remote"
	"github.com/custodia-labs/classe-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/classe-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/classe-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/classe-cli/internal/core/domain"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/classe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/classe-cli/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openConfigStore opens ~/.classe/config.toml. When the file cannot be
// opened the defaults are used for this run and nothing is persisted.
func openConfigStore() driven.ConfigStore {
	dir, err := file.DefaultDir()
	if err == nil {
		var store *file.ConfigStore
		if store, err = file.NewConfigStore(dir); err == nil {
			return store
		}
	}
	fmt.Fprintf(os.Stderr, "Warning: settings will not be saved: %v\n", err)
	return memory.NewConfigStore()
}

func run() error {
	configStore := openConfigStore()

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Settings:    services.NewSettingsService(configStore),
		Attachments: services.NewAttachmentService(filesystem.NewLoader(), filesystem.NewTextDecoder()),
		NewController: func(settings domain.ClientSettings) driving.SubmissionController {
			classifier := remote.NewClassifier(remote.ConfigFromSettings(settings))
			return services.NewSubmissionController(classifier)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.ExecuteContext(ctx)
}
