package llm

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Generator abstracts text-generation providers.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// GenerationConfig carries the per-call generation knobs.
type GenerationConfig struct {
	Temperature float64
	MaxTokens   int
}

const (
	MinTemperature = 0.0
	MaxTemperature = 1.0
	MinMaxTokens   = 16
	MaxMaxTokens   = 1024

	DefaultTemperature = 0.7
	DefaultMaxTokens   = 300
)

// DefaultConfig returns the knobs used for recommendations.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{Temperature: DefaultTemperature, MaxTokens: DefaultMaxTokens}
}

// Normalize clamps the config into the supported range.
func (c GenerationConfig) Normalize() GenerationConfig {
	out := c
	if out.Temperature < MinTemperature {
		out.Temperature = MinTemperature
	}
	if out.Temperature > MaxTemperature {
		out.Temperature = MaxTemperature
	}
	if out.MaxTokens <= 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	if out.MaxTokens < MinMaxTokens {
		out.MaxTokens = MinMaxTokens
	}
	if out.MaxTokens > MaxMaxTokens {
		out.MaxTokens = MaxMaxTokens
	}
	return out
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("llm provider not configured")

// PlaceholderClient is used when no provider is configured.
type PlaceholderClient struct{}

// GenerateText returns ErrNotImplemented.
func (PlaceholderClient) GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	_ = ctx
	_ = prompt
	_ = cfg
	return "", ErrNotImplemented
}

// TimeoutFromEnv reads LLM_TIMEOUT_SECONDS, falling back to def.
func TimeoutFromEnv(def time.Duration) time.Duration {
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Second
		}
	}
	return def
}

var _ Generator = PlaceholderClient{}
