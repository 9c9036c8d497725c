package entries

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidValue = errors.New("value must be a number")
)

// Entry is one named numeric data point recorded for a date.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// Number accepts a JSON number or a numeric string.
type Number struct {
	Value float64
	Set   bool
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}
	raw := string(b)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return ErrInvalidValue
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = Number{}
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ErrInvalidValue
	}
	*n = Number{Value: v, Set: true}
	return nil
}

// CreateInput is the payload for recording an entry.
type CreateInput struct {
	Date  string `json:"date"`
	Name  string `json:"name"`
	Value Number `json:"value"`
}
