package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"retro-backend/internal/llm"
)

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestNewClientRequiresModelAndKey(t *testing.T) {
	if _, err := NewClient("key", ""); err == nil {
		t.Fatalf("expected error for empty model")
	}
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatalf("expected error for empty api key")
	}
}

func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	oldURL := apiURL
	apiURL = server.URL + "/"
	t.Cleanup(func() {
		apiURL = oldURL
		server.Close()
	})
}

func TestGenerateTextSendsKnobs(t *testing.T) {
	var mu sync.Mutex
	var lastBody map[string]any

	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		mu.Lock()
		lastBody = payload
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  1. Walk\n2. Write  "}}]}`))
	})

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	got, err := client.GenerateText(context.Background(), "prompt", llm.GenerationConfig{Temperature: 0.7, MaxTokens: 300})
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "1. Walk\n2. Write" {
		t.Fatalf("unexpected content %q", got)
	}

	mu.Lock()
	defer mu.Unlock()
	if lastBody["model"] != "gpt-4o-mini" {
		t.Fatalf("unexpected model %v", lastBody["model"])
	}
	if temp, ok := lastBody["temperature"].(float64); !ok || temp != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", lastBody["temperature"])
	}
	if tokens, ok := lastBody["max_completion_tokens"].(float64); !ok || tokens != 300 {
		t.Fatalf("expected max_completion_tokens 300, got %v", lastBody["max_completion_tokens"])
	}
}

func TestGenerateTextOmitsTemperatureForGPT5(t *testing.T) {
	var mu sync.Mutex
	var lastBody map[string]any

	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		mu.Lock()
		lastBody = payload
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-5-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"ok"}}]}`))
	})

	client, err := NewClient("test-key", "gpt-5-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.GenerateText(context.Background(), "prompt", llm.DefaultConfig()); err != nil {
		t.Fatalf("GenerateText: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := lastBody["temperature"]; ok {
		t.Fatalf("expected temperature to be omitted for gpt-5 models")
	}
}

func TestGenerateTextDoesNotRetry(t *testing.T) {
	var mu sync.Mutex
	calls := 0

	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`))
	})

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.GenerateText(context.Background(), "prompt", llm.DefaultConfig()); err == nil {
		t.Fatalf("expected error on 429 response")
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected exactly 1 request, got %d", calls)
	}
}

func TestGenerateTextEmptyContent(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"   "}}]}`))
	})

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.GenerateText(context.Background(), "prompt", llm.DefaultConfig()); err == nil {
		t.Fatalf("expected error for empty content")
	}
}
