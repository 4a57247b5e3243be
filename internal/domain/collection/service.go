package collection

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, name Name, params map[string]string) (Page, error)
	Insert(ctx context.Context, name Name, fields map[string]string, timestamp string) (int64, error)
	Find(ctx context.Context, name Name, value string) (Record, error)
	Counts(ctx context.Context) (map[Name]int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "collection_service"),
	}
}

// List returns the window of the collection described by params, which holds
// only the query parameters the caller actually supplied.
func (s *Service) List(ctx context.Context, name Name, params map[string]string) (Page, error) {
	schema, err := Lookup(name)
	if err != nil {
		return Page{}, err
	}

	req, err := parseWindowRequest(schema, params)
	if err != nil {
		s.log.Debug("list rejected", "collection", name, "error", err)
		return Page{}, err
	}

	rows, err := s.repo.Scan(ctx, schema, req.sortColumn)
	if err != nil {
		s.log.Error("scan failed", "collection", name, "error", err)
		return Page{}, fmt.Errorf("list %s: %w", name, err)
	}

	n := len(rows)
	if n == 0 && req.anchor == nil {
		return Page{Items: []Record{}, Total: 0}, nil
	}

	anchor := n - 1
	if req.anchor != nil {
		anchor = *req.anchor
	}

	w, err := NewWindow(anchor, req.vector, n)
	if err != nil {
		return Page{}, err
	}

	return Page{Items: rows[w.Start:w.End], Total: n}, nil
}

// Insert validates the supplied fields against the collection and stores them.
func (s *Service) Insert(ctx context.Context, name Name, fields map[string]string, timestamp string) (int64, error) {
	schema, err := Lookup(name)
	if err != nil {
		return 0, err
	}

	if err := checkFields(schema, fields); err != nil {
		s.log.Debug("insert rejected", "collection", name, "error", err)
		return 0, err
	}

	if timestamp == "" {
		return 0, invalid("timestamp is required")
	}
	at, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return 0, invalid("timestamp %q is not an RFC 3339 date-time", timestamp)
	}

	id, err := s.repo.Insert(ctx, schema, NewRecord{
		Fields:    fields,
		Timestamp: timestamp,
		At:        at,
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			s.log.Debug("unique constraint hit", "collection", name, "field", schema.Unique)
			return 0, &DomainError{Err: err, Message: schema.ConflictMessage}
		}
		s.log.Error("insert failed", "collection", name, "error", err)
		return 0, fmt.Errorf("insert into %s: %w", name, err)
	}

	s.log.Info("record created", "collection", name, "id", id)
	return id, nil
}

// Find looks a record up by the collection's unique field.
func (s *Service) Find(ctx context.Context, name Name, value string) (Record, error) {
	schema, err := Lookup(name)
	if err != nil {
		return Record{}, err
	}
	if schema.Unique == "" {
		return Record{}, invalid("%s has no unique field to look up by", name)
	}
	if value == "" {
		return Record{}, invalid("%s must not be empty", schema.Unique)
	}

	rec, err := s.repo.FindBy(ctx, schema, schema.Unique, value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, &DomainError{Err: err, Message: fmt.Sprintf("%s %q not found", schema.Unique, value)}
		}
		return Record{}, fmt.Errorf("find in %s: %w", name, err)
	}
	return rec, nil
}

// Counts reports the size of every collection.
func (s *Service) Counts(ctx context.Context) (map[Name]int, error) {
	if err := s.repo.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	counts := make(map[Name]int)
	for _, schema := range All() {
		n, err := s.repo.Count(ctx, schema)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", schema.Name, err)
		}
		counts[schema.Name] = n
	}
	return counts, nil
}

func checkFields(s Schema, fields map[string]string) error {
	for _, f := range s.Fields {
		v, ok := fields[f]
		if !ok || v == "" {
			return invalid("%s is required", f)
		}
		if err := s.validateField(f, v); err != nil {
			return err
		}
	}
	if len(fields) != len(s.Fields) {
		for k := range fields {
			if !slices.Contains(s.Fields, k) {
				return invalid("unexpected field %q", k)
			}
		}
	}
	return nil
}
