package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"dataapi/internal/config"
	"dataapi/internal/domain/collection"
	"dataapi/internal/infrastructure/migration"
	"dataapi/internal/infrastructure/storage/postgres"
	"dataapi/internal/infrastructure/storage/sqlite"
)

// Open migrates the configured database and returns the ordered store on top of it.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (collection.Repository, error) {
	if err := Migrate(cfg, log); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(ctx, cfg.DatabaseURI, log)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseURI, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies pending schema migrations for the configured database.
func Migrate(cfg config.DB, log *slog.Logger) error {
	if cfg.Driver == config.DriverSQLite {
		if err := sqlite.EnsureDir(cfg.DatabaseURI); err != nil {
			return err
		}
	}

	if err := migration.NewMigration(cfg, nil, log).Up(); err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Driver, err)
	}
	return nil
}
