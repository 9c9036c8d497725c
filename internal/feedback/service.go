package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"retro-backend/internal/shared/validate"
)

const maxPointsLength = 4000

// Summarizer condenses free text into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service contains business logic for feedback notes.
type Service struct {
	Repo       Repo
	Summarizer Summarizer
	Now        func() time.Time
}

// Create validates and stores a note. At least one of good or bad points is required.
func (s *Service) Create(ctx context.Context, in CreateInput) (Note, error) {
	date, err := validate.Date("date", in.Date)
	if err != nil {
		return Note{}, err
	}
	good := strings.TrimSpace(in.GoodPoints)
	bad := strings.TrimSpace(in.BadPoints)
	if good == "" && bad == "" {
		return Note{}, &validate.FieldError{Field: "goodPoints", Message: "or badPoints is required"}
	}
	if err := validate.MaxLength("goodPoints", good, maxPointsLength); err != nil {
		return Note{}, err
	}
	if err := validate.MaxLength("badPoints", bad, maxPointsLength); err != nil {
		return Note{}, err
	}

	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	note := Note{
		ID:         uuid.NewString(),
		Date:       date,
		GoodPoints: good,
		BadPoints:  bad,
		CreatedAt:  now,
	}
	if err := s.Repo.Create(ctx, note); err != nil {
		return Note{}, err
	}
	return note, nil
}

func (s *Service) Get(ctx context.Context, id string) (Note, error) {
	if strings.TrimSpace(id) == "" {
		return Note{}, ErrNotFound
	}
	return s.Repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Note, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Summarize loads a note and asks the summarizer for a short summary of it.
func (s *Service) Summarize(ctx context.Context, id string) (string, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.Summarizer.Summarize(ctx, note.Text())
}

// RecentPainPoints returns the latest non-empty bad points, newest first.
func (s *Service) RecentPainPoints(ctx context.Context, limit int) ([]string, error) {
	return s.Repo.RecentBadPoints(ctx, limit)
}
