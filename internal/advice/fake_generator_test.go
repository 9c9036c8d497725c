package advice

import (
	"context"
	"sync"

	"retro-backend/internal/llm"
)

type fakeGenerator struct {
	mu      sync.Mutex
	out     string
	err     error
	prompts []string
	configs []llm.GenerationConfig
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string, cfg llm.GenerationConfig) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.configs = append(f.configs, cfg)
	return f.out, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type staticNotes struct {
	pain  []string
	moods []string
	err   error
	limit int
}

func (s *staticNotes) RecentPainPoints(ctx context.Context, limit int) ([]string, error) {
	s.limit = limit
	return s.pain, s.err
}

func (s *staticNotes) RecentMoodNotes(ctx context.Context, limit int) ([]string, error) {
	return s.moods, s.err
}
