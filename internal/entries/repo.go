package entries

import "context"

// Repo defines persistence operations for entries.
type Repo interface {
	Create(ctx context.Context, entry Entry) error
	List(ctx context.Context, limit, offset int) ([]Entry, error)
}
