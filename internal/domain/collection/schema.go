package collection

import (
	"strconv"
	"strings"
)

type Name string

const (
	Users    Name = "users"
	Messages Name = "messages"
)

// Column names shared by every collection table.
const (
	ColumnID           = "id"
	ColumnTimestamp    = "timestamp"
	ColumnTimestampKey = "timestamp_key"
)

// Schema describes one collection: its table, the client supplied fields,
// the sortable keys and the field backed by a unique constraint.
type Schema struct {
	Name Name
	// Fields are the required request fields, timestamp excluded, in column order.
	Fields      []string
	Unique      string
	SortKeys    map[string]string
	DefaultSort string
	// ConflictMessage is reported when an insert hits the unique constraint.
	ConflictMessage string
	validators      map[string]func(string) error
}

var schemas = map[Name]Schema{
	Users: {
		Name:   Users,
		Fields: []string{"username", "password_hash"},
		Unique: "username",
		SortKeys: map[string]string{
			"username":  "username",
			"timestamp": ColumnTimestampKey,
		},
		DefaultSort:     "username",
		ConflictMessage: "username is already in use",
	},
	Messages: {
		Name:   Messages,
		Fields: []string{"text", "author_id"},
		SortKeys: map[string]string{
			"timestamp": ColumnTimestampKey,
		},
		DefaultSort: "timestamp",
		validators: map[string]func(string) error{
			"author_id": validateAuthorID,
		},
	},
}

// Lookup returns the schema registered under name.
func Lookup(name Name) (Schema, error) {
	s, ok := schemas[name]
	if !ok {
		return Schema{}, invalid("unknown collection %q", name)
	}
	return s, nil
}

// All returns every registered schema in a stable order.
func All() []Schema {
	return []Schema{schemas[Users], schemas[Messages]}
}

// Table is the relational table backing the collection.
func (s Schema) Table() string {
	return string(s.Name)
}

// Columns lists the columns a record is read with: id, fields, timestamp.
func (s Schema) Columns() []string {
	cols := make([]string, 0, len(s.Fields)+2)
	cols = append(cols, ColumnID)
	cols = append(cols, s.Fields...)
	return append(cols, ColumnTimestamp)
}

// SortColumn resolves a case-insensitive sort key to its column.
func (s Schema) SortColumn(key string) (string, error) {
	if key == "" {
		return "", invalid("sort key must not be empty")
	}
	col, ok := s.SortKeys[strings.ToLower(key)]
	if !ok {
		return "", invalid("unsupported sort key %q for %s", key, s.Name)
	}
	return col, nil
}

func (s Schema) validateField(field, value string) error {
	if v, ok := s.validators[field]; ok {
		return v(value)
	}
	return nil
}

func validateAuthorID(value string) error {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return invalid("author_id must be a positive integer")
	}
	return nil
}
