package entries

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"retro-backend/internal/shared/validate"
)

const maxNameLength = 200

// Service contains business logic for entries.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// Create validates and stores a new entry.
func (s *Service) Create(ctx context.Context, in CreateInput) (Entry, error) {
	date, err := validate.Date("date", in.Date)
	if err != nil {
		return Entry{}, err
	}
	name := strings.TrimSpace(in.Name)
	if err := validate.Required("name", name); err != nil {
		return Entry{}, err
	}
	if err := validate.MaxLength("name", name, maxNameLength); err != nil {
		return Entry{}, err
	}
	if !in.Value.Set {
		return Entry{}, &validate.FieldError{Field: "value", Message: "is required"}
	}
	if math.IsNaN(in.Value.Value) || math.IsInf(in.Value.Value, 0) {
		return Entry{}, &validate.FieldError{Field: "value", Message: "must be a number"}
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Date:      date,
		Name:      name,
		Value:     in.Value.Value,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns entries newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
