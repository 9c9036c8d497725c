package ollama

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"

	"retro-backend/internal/llm"
)

const (
	defaultHost  = "http://localhost:11434"
	defaultModel = "llama3.2"
)

// Client implements llm.Generator against a local Ollama server.
type Client struct {
	model   string
	backend llms.Model
	timeout time.Duration
}

// NewClient constructs an Ollama-backed generator. Empty host or model select defaults.
func NewClient(host, model string) (*Client, error) {
	if strings.TrimSpace(host) == "" {
		host = defaultHost
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	backend, err := lcollama.New(
		lcollama.WithServerURL(host),
		lcollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}
	return &Client{model: model, backend: backend, timeout: llm.TimeoutFromEnv(120 * time.Second)}, nil
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// GenerateText runs a single-prompt completion.
func (c *Client) GenerateText(ctx context.Context, prompt string, cfg llm.GenerationConfig) (string, error) {
	cfg = cfg.Normalize()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	out, err := llms.GenerateFromSinglePrompt(ctx, c.backend, prompt,
		llms.WithTemperature(cfg.Temperature),
		llms.WithMaxTokens(cfg.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generate model=%s: %w", c.model, err)
	}
	content := strings.TrimSpace(out)
	if content == "" {
		return "", fmt.Errorf("ollama response empty content")
	}
	return content, nil
}

var _ llm.Generator = (*Client)(nil)
