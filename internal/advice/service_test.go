package advice

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"retro-backend/internal/llm"
)

func TestRecommendParsesGeneratorOutput(t *testing.T) {
	gen := &fakeGenerator{out: "1. Take a 10-minute walk each morning.\nKeep it simple and consistent.\n2. Write down one win before bed."}
	svc := &Service{Generator: gen}

	got, err := svc.Recommend(context.Background(), RetrospectiveInput{PainPoints: "missed two deadlines"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	want := []string{"Take a 10-minute walk each morning.\nKeep it simple and consistent.", "Write down one win before bed."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if gen.calls() != 1 {
		t.Fatalf("expected exactly one generator call, got %d", gen.calls())
	}
	if gen.configs[0] != llm.DefaultConfig() {
		t.Fatalf("expected default generation config, got %+v", gen.configs[0])
	}
	if !strings.Contains(gen.prompts[0], "missed two deadlines") {
		t.Fatalf("expected prompt to carry the input, got %q", gen.prompts[0])
	}
}

func TestRecommendInvalidInputSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{out: "1. unused"}
	svc := &Service{Generator: gen}

	_, err := svc.Recommend(context.Background(), RetrospectiveInput{PainPoints: " ", MoodNote: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gen.calls() != 0 {
		t.Fatalf("expected no generator call, got %d", gen.calls())
	}
}

func TestRecommendGenerationFailures(t *testing.T) {
	tests := []struct {
		name    string
		gen     *fakeGenerator
		message string
	}{
		{name: "provider error", gen: &fakeGenerator{err: errors.New("openai http status 429: rate limited")}, message: "openai http status 429: rate limited"},
		{name: "blank response", gen: &fakeGenerator{out: " \n "}, message: errEmptyResponse.Error()},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{Generator: tt.gen}
			_, err := svc.Recommend(context.Background(), RetrospectiveInput{MoodNote: "tired"})
			if !errors.Is(err, ErrGenerationFailed) {
				t.Fatalf("expected ErrGenerationFailed, got %v", err)
			}
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected GenerationError, got %T", err)
			}
			if msg := genErr.PublicMessage("fallback"); msg != tt.message {
				t.Fatalf("expected public message %q, got %q", tt.message, msg)
			}
			if tt.gen.calls() != 1 {
				t.Fatalf("expected exactly one call without retry, got %d", tt.gen.calls())
			}
		})
	}
}

func TestRecommendWithoutGenerator(t *testing.T) {
	svc := &Service{}
	_, err := svc.Recommend(context.Background(), RetrospectiveInput{MoodNote: "ok"})
	if !errors.Is(err, ErrGenerationFailed) || !errors.Is(err, llm.ErrNotImplemented) {
		t.Fatalf("expected generation failure wrapping ErrNotImplemented, got %v", err)
	}
}

func TestRecommendFallbackSingleItem(t *testing.T) {
	svc := &Service{Generator: &fakeGenerator{out: "Just try to relax more next week."}}
	got, err := svc.Recommend(context.Background(), RetrospectiveInput{MoodNote: "stressed"})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Just try to relax more next week."}) {
		t.Fatalf("unexpected recommendations %q", got)
	}
}

func TestRecommendFromRecent(t *testing.T) {
	gen := &fakeGenerator{out: "1. a\n2. b"}
	notes := &staticNotes{pain: []string{"late reviews", "missed standup"}, moods: []string{"drained"}}
	svc := &Service{Generator: gen, PainPoints: notes, MoodNotes: notes}

	got, err := svc.RecommendFromRecent(context.Background(), 50)
	if err != nil {
		t.Fatalf("RecommendFromRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %q", got)
	}
	if notes.limit != MaxRecentLimit {
		t.Fatalf("expected limit clamped to %d, got %d", MaxRecentLimit, notes.limit)
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, painPointsLabel+"late reviews\nmissed standup") || !strings.Contains(prompt, moodNoteLabel+"drained") {
		t.Fatalf("unexpected prompt %q", prompt)
	}
}

func TestRecommendFromRecentWithoutNotes(t *testing.T) {
	gen := &fakeGenerator{out: "1. a"}
	notes := &staticNotes{}
	svc := &Service{Generator: gen, PainPoints: notes, MoodNotes: notes}

	_, err := svc.RecommendFromRecent(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if notes.limit != DefaultRecentLimit {
		t.Fatalf("expected default limit, got %d", notes.limit)
	}
	if gen.calls() != 0 {
		t.Fatalf("expected no generator call")
	}

	notes.err = errors.New("db down")
	if _, err := svc.RecommendFromRecent(context.Background(), 1); err == nil || errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected plain source error, got %v", err)
	}
}

func TestSummarizeCachesResult(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(func() time.Time { return now })
	gen := &fakeGenerator{out: "  A calm week with one late review.  "}
	svc := &Service{Generator: gen, Model: "test-model", Cache: cache, CacheTTL: time.Hour}

	for i := 0; i < 2; i++ {
		got, err := svc.Summarize(context.Background(), "late review, otherwise calm")
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if got != "A calm week with one late review." {
			t.Fatalf("unexpected summary %q", got)
		}
	}
	if gen.calls() != 1 {
		t.Fatalf("expected cached second call, got %d generator calls", gen.calls())
	}
	if cfg := gen.configs[0]; cfg.Temperature != summaryTemperature || cfg.MaxTokens != summaryMaxTokens {
		t.Fatalf("unexpected summary config %+v", cfg)
	}

	now = now.Add(2 * time.Hour)
	if _, err := svc.Summarize(context.Background(), "late review, otherwise calm"); err != nil {
		t.Fatalf("Summarize after expiry: %v", err)
	}
	if gen.calls() != 2 {
		t.Fatalf("expected regeneration after expiry, got %d calls", gen.calls())
	}
}

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("cache unavailable")
}

func (failingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.New("cache unavailable")
}

func TestSummarizeToleratesCacheErrors(t *testing.T) {
	gen := &fakeGenerator{out: "Summary."}
	svc := &Service{Generator: gen, Cache: failingCache{}}
	got, err := svc.Summarize(context.Background(), "note")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "Summary." {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestSummarizeRejectsBlankNote(t *testing.T) {
	gen := &fakeGenerator{out: "unused"}
	svc := &Service{Generator: gen}
	if _, err := svc.Summarize(context.Background(), "\n"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gen.calls() != 0 {
		t.Fatalf("expected no generator call")
	}
}
