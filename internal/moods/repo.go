package moods

import "context"

// Repo defines persistence operations for moods.
type Repo interface {
	Create(ctx context.Context, mood Mood) error
	List(ctx context.Context, limit, offset int) ([]Mood, error)
	// RecentMemos returns up to limit non-empty memos, newest first.
	RecentMemos(ctx context.Context, limit int) ([]string, error)
}
