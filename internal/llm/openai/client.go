package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"retro-backend/internal/llm"
	"retro-backend/internal/shared/telemetry"
)

var apiURL = "https://api.openai.com/v1/"

// Client implements llm.Generator using OpenAI Chat Completions.
type Client struct {
	model  string
	client sdk.Client
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
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

// GenerateText sends a single user prompt and returns the first choice's content.
func (c *Client) GenerateText(ctx context.Context, prompt string, cfg llm.GenerationConfig) (string, error) {
	cfg = cfg.Normalize()
	params := sdk.ChatCompletionNewParams{
		Model: sdk.ChatModel(c.model),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.UserMessage(prompt),
		},
		MaxCompletionTokens: sdk.Int(int64(cfg.MaxTokens)),
	}
	if !isGPT5(c.model) {
		params.Temperature = sdk.Float(cfg.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("openai http status %d: %s", apiErr.StatusCode, strings.TrimSpace(apiErr.Message))
		}
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	logUsage(c.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	return content, nil
}

func logUsage(model string, promptTokens, completionTokens int64) {
	telemetry.Info("llm.response", map[string]any{
		"provider":          "openai",
		"model":             model,
		"prompt_tokens":     promptTokens,
		"completion_tokens": completionTokens,
	})
}

func isGPT5(model string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(model)), "gpt-5")
}

var _ llm.Generator = (*Client)(nil)
