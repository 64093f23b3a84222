package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/Veraticus/swipe-grocery/internal/config"
	"github.com/Veraticus/swipe-grocery/internal/storage"
	"github.com/spf13/viper"
)

// loadConfig reads the typed configuration from viper.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// initStorage opens the catalog database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Catalog.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openSource returns the configured catalog and a cleanup function.
func openSource(ctx context.Context, cfg *config.Config) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.SourceSQLite:
		store, err := initStorage(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("Using SQLite catalog", "path", store.Path())
		return store.Source(common.RetryOptions{}), func() { _ = store.Close() }, nil
	default:
		return catalog.Default(), func() {}, nil
	}
}
