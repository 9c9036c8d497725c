package feedback

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `id, note_date::text, good_points, bad_points, created_at`

// Create inserts a new note.
func (r *PGRepo) Create(ctx context.Context, note Note) error {
	const query = `
INSERT INTO feedback (
    id,
    note_date,
    good_points,
    bad_points,
    created_at
) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		note.ID,
		note.Date,
		nullableString(note.GoodPoints),
		nullableString(note.BadPoints),
		note.CreatedAt,
	)
	return err
}

// Get fetches a note by ID.
func (r *PGRepo) Get(ctx context.Context, id string) (Note, error) {
	query := `SELECT ` + selectColumns + ` FROM feedback WHERE id = $1 LIMIT 1`
	note, err := scanNote(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Note{}, ErrNotFound
		}
		return Note{}, err
	}
	return note, nil
}

// List lists notes ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Note, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + selectColumns + ` FROM feedback ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, note)
	}
	return out, rows.Err()
}

// RecentBadPoints returns the latest non-empty bad points.
func (r *PGRepo) RecentBadPoints(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 3
	}
	const query = `
SELECT bad_points
FROM feedback
WHERE bad_points IS NOT NULL AND btrim(bad_points) <> ''
ORDER BY created_at DESC, id DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var bad string
		if err := rows.Scan(&bad); err != nil {
			return nil, err
		}
		out = append(out, bad)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (Note, error) {
	var note Note
	var good, bad sql.NullString
	if err := row.Scan(&note.ID, &note.Date, &good, &bad, &note.CreatedAt); err != nil {
		return Note{}, err
	}
	note.GoodPoints = good.String
	note.BadPoints = bad.String
	return note, nil
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
