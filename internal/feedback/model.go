package feedback

import (
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("not found")

// Note is a dated retrospective: what went well and what to improve.
type Note struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	GoodPoints string    `json:"goodPoints"`
	BadPoints  string    `json:"badPoints"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Text renders the note as the plain text handed to the summarizer.
func (n Note) Text() string {
	var parts []string
	if good := strings.TrimSpace(n.GoodPoints); good != "" {
		parts = append(parts, "Went well:\n"+good)
	}
	if bad := strings.TrimSpace(n.BadPoints); bad != "" {
		parts = append(parts, "To improve:\n"+bad)
	}
	return strings.Join(parts, "\n\n")
}

type CreateInput struct {
	Date       string `json:"date"`
	GoodPoints string `json:"goodPoints"`
	BadPoints  string `json:"badPoints"`
}
