// Command filesafe is a PIN-protected vault for family documents.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/filesafe/internal/adapters/driven/config/file"
	"github.com/custodia-labs/filesafe/internal/adapters/driven/crypto/argon2"
	"github.com/custodia-labs/filesafe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/filesafe/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/filesafe/internal/adapters/driven/watch"
	"github.com/custodia-labs/filesafe/internal/adapters/driving/cli"
	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/services"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// bootstrap opens the configured storage under home and wires the services.
func bootstrap(home string) (*cli.Services, error) {
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		home = filepath.Join(userHome, ".filesafe")
	}

	configStore, err := file.NewConfigStore(home)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(home, "data")
	}

	var (
		profileStore driven.ProfileStore
		docStore     driven.DocumentStore
		vaultStore   driven.VaultStore
		notifier     driven.ChangeNotifier
		closeFn      func() error
	)
	switch settings.Storage.Backend {
	case domain.StorageBackendMemory:
		logger.Debug("Using in-memory storage")
		profileStore = memory.NewProfileStore()
		docStore = memory.NewDocumentStore()
		vaultStore = memory.NewVaultStore()
	default:
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		logger.Debug("Using database %s", store.Path())
		profileStore = store.ProfileStore()
		docStore = store.DocumentStore()
		vaultStore = store.VaultStore()
		notifier = watch.New(dataDir, 0)
		closeFn = store.Close
	}

	searchService := services.NewSearchService(profileStore, docStore)
	searchService.SetExpiringDays(settings.Search.ExpiringDays)

	return &cli.Services{
		Search:   searchService,
		Profile:  services.NewProfileService(profileStore, docStore, configStore),
		Document: services.NewDocumentService(docStore, profileStore),
		Vault:    services.NewVaultService(vaultStore, argon2.NewDefault(), profileStore, docStore, configStore),
		Settings: settingsService,
		Sample:   services.NewSampleDataService(profileStore, docStore),
		Notifier: notifier,
		DataDir:  dataDir,
		Close:    closeFn,
	}, nil
}
