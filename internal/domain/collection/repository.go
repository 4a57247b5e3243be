package collection

import "context"

// Repository is the ordered store a collection lives in.
type Repository interface {
	// Count returns the number of records in the collection.
	Count(ctx context.Context, s Schema) (int, error)
	// Scan returns every record ordered by sortColumn ascending, ties by id.
	Scan(ctx context.Context, s Schema, sortColumn string) ([]Record, error)
	// Insert stores rec and returns its id. A unique violation is ErrConflict.
	Insert(ctx context.Context, s Schema, rec NewRecord) (int64, error)
	// FindBy returns the record whose field equals value or ErrNotFound.
	FindBy(ctx context.Context, s Schema, field, value string) (Record, error)
	Ping(ctx context.Context) error
	Close() error
}
