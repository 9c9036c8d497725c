package moods

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Mood
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(ctx context.Context, mood Mood) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, mood)
	return nil
}

func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Mood, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	all := r.newestFirst()
	if offset >= len(all) {
		return []Mood{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *MemoryRepo) RecentMemos(ctx context.Context, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []string{}
	for _, m := range r.newestFirst() {
		if limit > 0 && len(out) >= limit {
			break
		}
		if memo := strings.TrimSpace(m.Memo); memo != "" {
			out = append(out, memo)
		}
	}
	return out, nil
}

func (r *MemoryRepo) newestFirst() []Mood {
	r.mu.RLock()
	out := make([]Mood, len(r.data))
	copy(out, r.data)
	r.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var _ Repo = (*MemoryRepo)(nil)
