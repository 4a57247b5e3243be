package collection

import "time"

// Record is a single row of a collection.
type Record struct {
	ID        int64
	Fields    map[string]string
	Timestamp string
}

// NewRecord is what the service hands to the store on insert.
type NewRecord struct {
	Fields    map[string]string
	Timestamp string
	At        time.Time
}

// timestampKeyLayout renders every instant RFC 3339 can express (years
// 0000 to 9999) as fixed-width UTC text, so byte order is time order.
const timestampKeyLayout = "2006-01-02T15:04:05.000000000Z"

// TimestampKey is the sortable form of At stored next to the client string.
func (r NewRecord) TimestampKey() string {
	return r.At.UTC().Format(timestampKeyLayout)
}

// Page is one window of a sort-ordered collection.
type Page struct {
	Items []Record
	Total int
}

// Query parameter names understood by List.
const (
	ParamIndex  = "index"
	ParamVector = "vector"
	ParamSort   = "sort"
)

// DefaultVector is used when the caller does not supply a vector.
const DefaultVector = -10
