package main

import (
	"context"
	"fmt"

	"github.com/hfarooq/murajaah/internal/config"
	"github.com/hfarooq/murajaah/internal/hifz"
	"github.com/hfarooq/murajaah/internal/mirror"
	"github.com/hfarooq/murajaah/internal/review"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newEngine wires the store stack and the optional remote mirror from
// the configuration. The returned cleanup closes any open resources.
func newEngine(cfg *config.Config) (*review.Engine, func(), error) {
	files, err := hifz.NewFileStore(cfg.Data.Directory)
	if err != nil {
		return nil, nil, fmt.Errorf("hifz.NewFileStore(%s) > %w", cfg.Data.Directory, err)
	}

	var store hifz.Store = files
	cleanup := func() {}
	if cfg.Database.Enabled {
		db, err := hifz.OpenDB(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("hifz.OpenDB > %w", err)
		}
		if err := hifz.EnsureSchema(context.Background(), db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("hifz.EnsureSchema > %w", err)
		}
		store = hifz.NewDBStore(files, db)
		cleanup = func() {
			_ = db.Close()
		}
	}

	var remote review.Mirror
	if cfg.Mirror.Enabled {
		client := mirror.NewClient(cfg.Mirror.BaseURL, cfg.Mirror.Token, cfg.Mirror.UserID)
		previousCleanup := cleanup
		cleanup = func() {
			_ = client.Close()
			previousCleanup()
		}
		remote = client
	}

	return review.NewEngine(store, remote), cleanup, nil
}
