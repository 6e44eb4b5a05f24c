package cli

import (
	"fmt"

	"iljeong/internal/api"
	"iljeong/internal/config"
	"iljeong/internal/storage"
	"iljeong/internal/storage/providers"
)

// loadEnv loads the configuration and constructs the event provider it
// selects. Shared by all subcommands.
func loadEnv() (config.Config, storage.EventProvider, error) {
	cfg, err := config.Load(Opts.Config)
	if err != nil {
		return cfg, nil, fmt.Errorf("can't load config: %w", err)
	}

	switch cfg.Store {
	case config.StoreAPI:
		return cfg, api.NewClient(cfg.APIURL), nil
	case config.StoreFile:
		return cfg, providers.NewFileProvider(cfg.EventsPath), nil
	default:
		return cfg, nil, fmt.Errorf("unknown store '%s'", cfg.Store)
	}
}
