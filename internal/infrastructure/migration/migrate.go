package migration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/exp/slog"

	"dataapi/internal/config"

	// Blank imports register the database drivers migrate resolves by URL scheme.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
)

//go:embed sql
var embedded embed.FS

// Migrator is the part of *migrate.Migrate the migration runner uses.
type Migrator interface {
	Up() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// MigrationEngine builds a Migrator; tests replace it to stay off disk and database.
type MigrationEngine func(src source.Driver, databaseURL string) (Migrator, error)

// DefaultEngine is the production engine.
func DefaultEngine(src source.Driver, databaseURL string) (Migrator, error) {
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

type Migration struct {
	cfg    config.DB
	engine MigrationEngine
	log    *slog.Logger
}

func NewMigration(cfg config.DB, engine MigrationEngine, log *slog.Logger) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		cfg:    cfg,
		engine: engine,
		log:    log.With("component", "migration"),
	}
}

// Up applies every pending migration. Having nothing to apply is not an error.
func (mg *Migration) Up() (err error) {
	src, err := mg.source()
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := mg.engine(src, DatabaseURL(mg.cfg))
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source error: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database error: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("migration version: %w", verr)
	}
	mg.log.Info("schema is up to date", "driver", mg.cfg.Driver, "version", version, "dirty", dirty)

	return nil
}

func (mg *Migration) source() (source.Driver, error) {
	var fsys fs.FS = embedded
	path := "sql/" + mg.cfg.Driver
	if mg.cfg.Migrations != "" {
		fsys = os.DirFS(mg.cfg.Migrations)
		path = "."
	}
	return iofs.New(fsys, path)
}

// DatabaseURL converts the configured database URI into the URL migrate expects.
func DatabaseURL(cfg config.DB) string {
	if cfg.Driver == config.DriverSQLite && !strings.HasPrefix(cfg.DatabaseURI, "sqlite3://") {
		return "sqlite3://" + cfg.DatabaseURI
	}
	return cfg.DatabaseURI
}
