package bootstrap

import (
	"fmt"
	"strings"

	"retro-backend/internal/llm"
	"retro-backend/internal/llm/anthropic"
	"retro-backend/internal/llm/ollama"
	"retro-backend/internal/llm/openai"
	"retro-backend/internal/shared/config"
)

const defaultOpenAIModel = "gpt-4o-mini"

// BuildGenerator returns the configured text generator and the model name it uses.
func BuildGenerator(cfg config.Config) (llm.Generator, string, error) {
	model := strings.TrimSpace(cfg.LLMModel)
	switch cfg.LLMProvider {
	case "none":
		return llm.PlaceholderClient{}, "", nil
	case "anthropic":
		client, err := anthropic.NewClient(cfg.AnthropicAPIKey, model)
		if err != nil {
			return nil, "", fmt.Errorf("anthropic: %w", err)
		}
		return client, client.Model(), nil
	case "ollama":
		client, err := ollama.NewClient(cfg.OllamaHost, model)
		if err != nil {
			return nil, "", fmt.Errorf("ollama: %w", err)
		}
		return client, client.Model(), nil
	default:
		if model == "" {
			model = defaultOpenAIModel
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, model)
		if err != nil {
			return nil, "", fmt.Errorf("openai: %w", err)
		}
		return client, model, nil
	}
}

// GenerationConfig returns the recommendation knobs from configuration.
func GenerationConfig(cfg config.Config) llm.GenerationConfig {
	return llm.GenerationConfig{
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	}.Normalize()
}
