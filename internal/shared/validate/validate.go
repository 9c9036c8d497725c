package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format accepted by record endpoints.
const DateLayout = "2006-01-02"

// ErrInvalid matches every FieldError.
var ErrInvalid = errors.New("invalid input")

// FieldError names the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Required rejects blank values.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	return nil
}

// Date checks value is a YYYY-MM-DD calendar date and returns it trimmed.
func Date(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &FieldError{Field: field, Message: "is required"}
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "", &FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return value, nil
}

// IntRange rejects values outside [min, max].
func IntRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

// MaxLength rejects values longer than max bytes.
func MaxLength(field, value string, max int) error {
	if len(value) > max {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}
