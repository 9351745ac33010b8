// Command seqres resolves symbolic sequence addresses to sequence content.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/seqres/internal/adapters/driven/config/file"
	"github.com/custodia-labs/seqres/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/seqres/internal/adapters/driving/cli"
	"github.com/custodia-labs/seqres/internal/core/services"
	"github.com/custodia-labs/seqres/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settingsSvc := services.NewSettingsService(configStore)
	settings, err := settingsSvc.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, err := sqlite.NewStore(settings.Fragments.DBDir)
	if err != nil {
		return fmt.Errorf("open fragment store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing fragment store: %v", err)
		}
	}()
	logger.Debug("fragment store at %s", store.Path())

	if err := services.ConfigureDefaultResolver(services.RegistryConfigFromSettings(settings, store.FragmentStore())); err != nil {
		return fmt.Errorf("configure resolvers: %w", err)
	}
	defer func() {
		if err := services.ResetDefaultResolver(); err != nil {
			logger.Warn("closing resolvers: %v", err)
		}
	}()

	set, err := services.DefaultResolverSet()
	if err != nil {
		return fmt.Errorf("build resolvers: %w", err)
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Settings:  settingsSvc,
		Fragments: set.Fragments,
		Sequences: services.NewSequenceService(set.Chain),
		Cache:     services.NewCacheService(set.CacheDir),
	})

	return cli.Execute()
}
