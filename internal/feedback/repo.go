package feedback

import "context"

// Repo defines persistence operations for feedback notes.
type Repo interface {
	Create(ctx context.Context, note Note) error
	Get(ctx context.Context, id string) (Note, error)
	List(ctx context.Context, limit, offset int) ([]Note, error)
	// RecentBadPoints returns up to limit non-empty "to improve" texts, newest first.
	RecentBadPoints(ctx context.Context, limit int) ([]string, error)
}
