package feedback

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Note
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Note)}
}

func (r *MemoryRepo) Create(ctx context.Context, note Note) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[note.ID] = note
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Note, error) {
	if err := ctx.Err(); err != nil {
		return Note{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	note, ok := r.data[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return note, nil
}

func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	all := r.newestFirst()
	if offset >= len(all) {
		return []Note{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *MemoryRepo) RecentBadPoints(ctx context.Context, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []string{}
	for _, n := range r.newestFirst() {
		if limit > 0 && len(out) >= limit {
			break
		}
		if bad := strings.TrimSpace(n.BadPoints); bad != "" {
			out = append(out, bad)
		}
	}
	return out, nil
}

func (r *MemoryRepo) newestFirst() []Note {
	r.mu.RLock()
	out := make([]Note, 0, len(r.data))
	for _, n := range r.data {
		out = append(out, n)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var _ Repo = (*MemoryRepo)(nil)
