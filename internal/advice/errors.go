package advice

import (
	"errors"
	"strings"

	"retro-backend/internal/shared/util"
)

const maxPublicMessageLength = 500

var (
	// ErrInvalidInput marks requests rejected before any generation call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrGenerationFailed marks failures of the text-generation collaborator.
	ErrGenerationFailed = errors.New("generation failed")
)

const (
	ErrorCodeValidation       = "validation_error"
	ErrorCodeGenerationFailed = "generation_failed"
)

// InvalidInputError describes why a request could not be composed.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// GenerationError wraps a collaborator failure with the best message available.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// PublicMessage returns the collaborator message when present, otherwise fallback.
func (e *GenerationError) PublicMessage(fallback string) string {
	if e.Err != nil {
		if msg := sanitizeError(e.Err); msg != "" {
			return msg
		}
	}
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return fallback
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return util.SingleLine(err.Error(), maxPublicMessageLength)
}

var errEmptyResponse = errors.New("empty response from generator")
