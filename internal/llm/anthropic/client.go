package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"retro-backend/internal/llm"
	"retro-backend/internal/shared/telemetry"
)

const defaultModel = "claude-haiku-4-5"

var apiURL = "https://api.anthropic.com/"

// Client implements llm.Generator using the Anthropic Messages API.
type Client struct {
	model  string
	client sdk.Client
}

// NewClient constructs a new Anthropic client. An empty model selects the default.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	timeout := llm.TimeoutFromEnv(60 * time.Second)
	return &Client{
		model: model,
		client: sdk.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(apiURL),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
			option.WithMaxRetries(0),
		),
	}, nil
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// GenerateText sends the prompt as a single user turn and joins the text blocks of the reply.
func (c *Client) GenerateText(ctx context.Context, prompt string, cfg llm.GenerationConfig) (string, error) {
	cfg = cfg.Normalize()
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   int64(cfg.MaxTokens),
		Temperature: sdk.Float(cfg.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("anthropic http status %d: %w", apiErr.StatusCode, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("anthropic request timeout: %w", err)
		}
		return "", fmt.Errorf("anthropic request: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	telemetry.Info("llm.response", map[string]any{
		"provider":      "anthropic",
		"model":         c.model,
		"input_tokens":  msg.Usage.InputTokens,
		"output_tokens": msg.Usage.OutputTokens,
	})

	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", fmt.Errorf("anthropic response empty content")
	}
	return content, nil
}

var _ llm.Generator = (*Client)(nil)
