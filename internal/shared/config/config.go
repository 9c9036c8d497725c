package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"retro-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port             string
	Env              string
	CORSAllowOrigin  []string
	DatabaseURL      string
	LLMProvider      string
	LLMModel         string
	LLMTemperature   float64
	LLMMaxTokens     int
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	OllamaHost       string
	RedisURL         string
	SummaryCacheTTL  time.Duration
	RateLimitAIRPS   float64
	RateLimitAIBurst int
	LogLevel         string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": env})
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:      dbURL,
		LLMProvider:      normalizeProvider(getEnv("LLM_PROVIDER", "openai")),
		LLMModel:         getEnv("LLM_MODEL", ""),
		LLMTemperature:   getFloat("LLM_TEMPERATURE", 0.7),
		LLMMaxTokens:     getInt("LLM_MAX_TOKENS", 300),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		OllamaHost:       getEnv("OLLAMA_HOST", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		SummaryCacheTTL:  getDuration("SUMMARY_CACHE_TTL", time.Hour),
		RateLimitAIRPS:   getFloat("RATE_LIMIT_AI_RPS", 1),
		RateLimitAIBurst: getInt("RATE_LIMIT_AI_BURST", 5),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// IsLocal reports whether the app may fall back to in-memory storage.
func (c Config) IsLocal() bool {
	return c.Env == "dev" || c.Env == "local"
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

// getDuration accepts Go duration strings ("90s", "1h") or a bare number of seconds.
func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	telemetry.Warn("config.invalid_value", map[string]any{"key": key, "value": raw})
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "anthropic", "claude":
		return "anthropic"
	case "ollama", "local":
		return "ollama"
	case "none", "off", "disabled":
		return "none"
	default:
		return "openai"
	}
}
