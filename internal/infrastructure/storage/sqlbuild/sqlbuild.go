// Package sqlbuild renders the parameterized statements both stores run.
// Identifiers come from collection schemas and are checked against them;
// values are always bound as placeholders.
package sqlbuild

import (
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"dataapi/internal/domain/collection"
)

type Builder struct {
	sb sq.StatementBuilderType
}

// New returns a builder emitting placeholders in the given format,
// sq.Question for SQLite and sq.Dollar for PostgreSQL.
func New(ph sq.PlaceholderFormat) Builder {
	return Builder{sb: sq.StatementBuilder.PlaceholderFormat(ph)}
}

func (b Builder) Count(s collection.Schema) (string, []any, error) {
	return b.sb.Select("COUNT(*)").From(quote(s.Table())).ToSql()
}

// Scan selects the whole collection ordered by sortColumn, ties broken by id.
func (b Builder) Scan(s collection.Schema, sortColumn string) (string, []any, error) {
	if !sortable(s, sortColumn) {
		return "", nil, fmt.Errorf("column %q is not sortable in %s", sortColumn, s.Name)
	}
	return b.sb.Select(quoteAll(s.Columns())...).
		From(quote(s.Table())).
		OrderBy(quote(sortColumn)+" ASC", quote(collection.ColumnID)+" ASC").
		ToSql()
}

// Insert adds one record and returns its generated id.
func (b Builder) Insert(s collection.Schema, rec collection.NewRecord) (string, []any, error) {
	cols := make([]string, 0, len(s.Fields)+2)
	vals := make([]any, 0, len(s.Fields)+2)
	for _, f := range s.Fields {
		v, ok := rec.Fields[f]
		if !ok {
			return "", nil, fmt.Errorf("field %q missing for %s", f, s.Name)
		}
		cols = append(cols, quote(f))
		vals = append(vals, v)
	}
	cols = append(cols, quote(collection.ColumnTimestamp), quote(collection.ColumnTimestampKey))
	vals = append(vals, rec.Timestamp, rec.TimestampKey())

	return b.sb.Insert(quote(s.Table())).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING " + quote(collection.ColumnID)).
		ToSql()
}

// FindBy selects the first record whose field equals value.
func (b Builder) FindBy(s collection.Schema, field, value string) (string, []any, error) {
	if !slices.Contains(s.Fields, field) {
		return "", nil, fmt.Errorf("unknown field %q in %s", field, s.Name)
	}
	return b.sb.Select(quoteAll(s.Columns())...).
		From(quote(s.Table())).
		Where(sq.Eq{quote(field): value}).
		OrderBy(quote(collection.ColumnID) + " ASC").
		Limit(1).
		ToSql()
}

// ScanRecord reads one row selected with the schema's Columns.
// It accepts the Scan method of *sql.Rows, *sql.Row or pgx.Rows alike.
func ScanRecord(s collection.Schema, scan func(dest ...any) error) (collection.Record, error) {
	var rec collection.Record
	values := make([]string, len(s.Fields))

	dest := make([]any, 0, len(s.Fields)+2)
	dest = append(dest, &rec.ID)
	for i := range values {
		dest = append(dest, &values[i])
	}
	dest = append(dest, &rec.Timestamp)

	if err := scan(dest...); err != nil {
		return collection.Record{}, err
	}

	rec.Fields = make(map[string]string, len(s.Fields))
	for i, f := range s.Fields {
		rec.Fields[f] = values[i]
	}
	return rec, nil
}

func sortable(s collection.Schema, column string) bool {
	for _, c := range s.SortKeys {
		if c == column {
			return true
		}
	}
	return false
}

func quote(ident string) string {
	return `"` + ident + `"`
}

func quoteAll(idents []string) []string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = quote(id)
	}
	return out
}
