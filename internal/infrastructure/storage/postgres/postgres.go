package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"dataapi/internal/domain/collection"
	"dataapi/internal/infrastructure/storage/sqlbuild"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Storage is the PostgreSQL-backed ordered store.
type Storage struct {
	pool *pgxpool.Pool
	sql  sqlbuild.Builder
	log  *slog.Logger
}

func New(ctx context.Context, uri string, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &Storage{
		pool: pool,
		sql:  sqlbuild.New(sq.Dollar),
		log:  log.With("component", "postgres_storage"),
	}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
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
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
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

	rows, err := s.pool.Query(ctx, query, args...)
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
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
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

	rec, err := sqlbuild.ScanRecord(schema, s.pool.QueryRow(ctx, query, args...).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return collection.Record{}, collection.ErrNotFound
		}
		return collection.Record{}, fmt.Errorf("%w: find in %s: %w", collection.ErrStoreUnavailable, schema.Table(), err)
	}
	return rec, nil
}
