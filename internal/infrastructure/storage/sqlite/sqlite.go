package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"dataapi/internal/domain/collection"
	"dataapi/internal/infrastructure/storage/sqlbuild"
)

// Storage is the SQLite-backed ordered store.
type Storage struct {
	db  *sql.DB
	sql sqlbuild.Builder
	log *slog.Logger
}

// New opens the database file at path, creating its directory if needed.
// The schema is expected to be migrated already.
func New(ctx context.Context, path string, log *slog.Logger) (*Storage, error) {
	if err := EnsureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &Storage{
		db:  db,
		sql: sqlbuild.New(sq.Question),
		log: log.With("component", "sqlite_storage"),
	}, nil
}

// EnsureDir creates the parent directory of a database file.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", collection.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Storage) Count(ctx context.Context, schema collection.Schema) (int, error) {
	query, args, err := s.sql.Count(schema)
	if err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		s.log.Error("count failed", "table", schema.Table(), "error", err)
		return 0, fmt.Errorf("%w: count %s: %w", collection.ErrStoreUnavailable, schema.Table(), err)
	}
	return n, nil
}

func (s *Storage) Scan(ctx context.Context, schema collection.Schema, sortColumn string) ([]collection.Record, error) {
	query, args, err := s.sql.Scan(schema, sortColumn)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error("scan failed", "table", schema.Table(), "error", err)
		return nil, fmt.Errorf("%w: scan %s: %w", collection.ErrStoreUnavailable, schema.Table(), err)
	}
	defer rows.Close()

	records := make([]collection.Record, 0)
	for rows.Next() {
		rec, err := sqlbuild.ScanRecord(schema, rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s row: %w", collection.ErrStoreUnavailable, schema.Table(), err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate %s: %w", collection.ErrStoreUnavailable, schema.Table(), err)
	}

	return records, nil
}

func (s *Storage) Insert(ctx context.Context, schema collection.Schema, rec collection.NewRecord) (int64, error) {
	query, args, err := s.sql.Insert(schema, rec)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert %s: %w", schema.Table(), collection.ErrConflict)
		}
		s.log.Error("insert failed", "table", schema.Table(), "error", err)
		return 0, fmt.Errorf("%w: insert %s: %w", collection.ErrStoreUnavailable, schema.Table(), err)
	}
	return id, nil
}

func (s *Storage) FindBy(ctx context.Context, schema collection.Schema, field, value string) (collection.Record, error) {
	query, args, err := s.sql.FindBy(schema, field, value)
	if err != nil {
		return collection.Record{}, err
	}

	rec, err := sqlbuild.ScanRecord(schema, s.db.QueryRowContext(ctx, query, args...).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return collection.Record{}, collection.ErrNotFound
		}
		return collection.Record{}, fmt.Errorf("%w: find in %s: %w", collection.ErrStoreUnavailable, schema.Table(), err)
	}
	return rec, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
}
