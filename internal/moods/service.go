package moods

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"retro-backend/internal/shared/validate"
)

const maxMemoLength = 4000

// Service contains business logic for moods.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// Create validates and stores a new mood.
func (s *Service) Create(ctx context.Context, in CreateInput) (Mood, error) {
	date, err := validate.Date("date", in.Date)
	if err != nil {
		return Mood{}, err
	}
	if in.Score == nil {
		return Mood{}, &validate.FieldError{Field: "score", Message: "is required"}
	}
	if err := validate.IntRange("score", *in.Score, MinScore, MaxScore); err != nil {
		return Mood{}, err
	}
	memo := strings.TrimSpace(in.Memo)
	if err := validate.MaxLength("memo", memo, maxMemoLength); err != nil {
		return Mood{}, err
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	mood := Mood{
		ID:        uuid.NewString(),
		Date:      date,
		Score:     *in.Score,
		Memo:      memo,
		CreatedAt: now,
	}
	if err := s.Repo.Create(ctx, mood); err != nil {
		return Mood{}, err
	}
	return mood, nil
}

// List returns moods newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Mood, error) {
	return s.Repo.List(ctx, limit, offset)
}

// RecentMoodNotes returns the latest non-empty memos, newest first.
func (s *Service) RecentMoodNotes(ctx context.Context, limit int) ([]string, error) {
	return s.Repo.RecentMemos(ctx, limit)
}
