package moods

import "time"

// Score bounds.
const (
	MinScore = 1
	MaxScore = 10
)

// Mood is a dated emotion score with an optional memo.
type Mood struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Score     int       `json:"score"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput is the payload for recording a mood. Score is a pointer so a missing value is distinguishable from 0.
type CreateInput struct {
	Date  string `json:"date"`
	Score *int   `json:"score"`
	Memo  string `json:"memo"`
}
