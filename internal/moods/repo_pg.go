package moods

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, mood Mood) error {
	const query = `
INSERT INTO moods (
    id,
    mood_date,
    score,
    memo,
    created_at
) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, mood.ID, mood.Date, mood.Score, nullableString(mood.Memo), mood.CreatedAt)
	return err
}

func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Mood, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, mood_date::text, score, memo, created_at
FROM moods
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Mood{}
	for rows.Next() {
		var m Mood
		var memo sql.NullString
		if err := rows.Scan(&m.ID, &m.Date, &m.Score, &memo, &m.CreatedAt); err != nil {
			return nil, err
		}
		if memo.Valid {
			m.Memo = memo.String
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) RecentMemos(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 3
	}
	const query = `
SELECT memo
FROM moods
WHERE memo IS NOT NULL AND btrim(memo) <> ''
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var memo string
		if err := rows.Scan(&memo); err != nil {
			return nil, err
		}
		out = append(out, memo)
	}
	return out, rows.Err()
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
