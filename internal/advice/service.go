package advice

import (
	"context"
	"strings"
	"time"

	"retro-backend/internal/llm"
	"retro-backend/internal/shared/metrics"
	"retro-backend/internal/shared/telemetry"
	"retro-backend/internal/shared/util"
)

const (
	DefaultRecentLimit = 3
	MaxRecentLimit     = 10

	summaryTemperature = 0.3
	summaryMaxTokens   = 200
)

// PainPointSource yields recent "to improve" notes, newest first.
type PainPointSource interface {
	RecentPainPoints(ctx context.Context, limit int) ([]string, error)
}

// MoodNoteSource yields recent mood memos, newest first.
type MoodNoteSource interface {
	RecentMoodNotes(ctx context.Context, limit int) ([]string, error)
}

// Service turns retrospective notes into recommendations and summaries.
type Service struct {
	Generator  llm.Generator
	Config     llm.GenerationConfig
	Model      string
	Cache      SummaryCache
	CacheTTL   time.Duration
	PainPoints PainPointSource
	MoodNotes  MoodNoteSource
}

// Recommend composes a prompt, calls the generator exactly once and parses the
// numbered list it returns. Invalid input is rejected before any call.
func (s *Service) Recommend(ctx context.Context, input RetrospectiveInput) ([]string, error) {
	prompt, err := Build(input)
	if err != nil {
		metrics.IncGeneration(metrics.KindRecommendations, metrics.OutcomeInvalid)
		return nil, err
	}

	raw, err := s.generate(ctx, metrics.KindRecommendations, prompt, s.recommendConfig())
	if err != nil {
		return nil, &GenerationError{Message: "failed to generate recommendations", Err: err}
	}

	list, fellBack := parse(raw)
	metrics.AddRecommendationsParsed(len(list))
	if fellBack {
		metrics.IncRecommendationFallback()
	}
	telemetry.Info("advice.recommendations", map[string]any{
		"items":        len(list),
		"fallback":     fellBack,
		"prompt_chars": len(prompt),
		"raw_chars":    len(raw),
	})
	return list.Texts(), nil
}

// RecommendFromRecent builds the input from stored notes and calls Recommend.
func (s *Service) RecommendFromRecent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	var input RetrospectiveInput
	if s.PainPoints != nil {
		points, err := s.PainPoints.RecentPainPoints(ctx, limit)
		if err != nil {
			return nil, err
		}
		input.PainPoints = strings.Join(points, "\n")
	}
	if s.MoodNotes != nil {
		notes, err := s.MoodNotes.RecentMoodNotes(ctx, limit)
		if err != nil {
			return nil, err
		}
		input.MoodNote = strings.Join(notes, "\n")
	}
	if strings.TrimSpace(input.PainPoints) == "" && strings.TrimSpace(input.MoodNote) == "" {
		metrics.IncGeneration(metrics.KindRecommendations, metrics.OutcomeInvalid)
		return nil, &InvalidInputError{Reason: "no recent feedback or mood notes to build recommendations from"}
	}
	return s.Recommend(ctx, input)
}

// Summarize returns a short summary of note, served from the cache when possible.
func (s *Service) Summarize(ctx context.Context, note string) (string, error) {
	prompt, err := BuildSummary(note)
	if err != nil {
		metrics.IncGeneration(metrics.KindSummary, metrics.OutcomeInvalid)
		return "", err
	}

	key := util.HashKey(metrics.KindSummary, s.Model, prompt)
	if s.Cache != nil {
		cached, ok, err := s.Cache.Get(ctx, key)
		if err != nil {
			telemetry.Warn("advice.cache_get_failed", map[string]any{"error": err})
		} else if ok {
			metrics.IncGeneration(metrics.KindSummary, metrics.OutcomeCached)
			return cached, nil
		}
	}

	summary, err := s.generate(ctx, metrics.KindSummary, prompt, llm.GenerationConfig{
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		return "", &GenerationError{Message: "failed to generate summary", Err: err}
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, summary, s.CacheTTL); err != nil {
			telemetry.Warn("advice.cache_set_failed", map[string]any{"error": err})
		}
	}
	return summary, nil
}

// generate performs the single generator call and records its outcome.
// A blank response counts as a failure.
func (s *Service) generate(ctx context.Context, kind, prompt string, cfg llm.GenerationConfig) (string, error) {
	if s.Generator == nil {
		metrics.IncGeneration(kind, metrics.OutcomeFailure)
		return "", llm.ErrNotImplemented
	}
	start := time.Now()
	out, err := s.Generator.GenerateText(ctx, prompt, cfg.Normalize())
	metrics.ObserveGenerationDurationMs(kind, float64(time.Since(start).Milliseconds()))
	if err == nil && strings.TrimSpace(out) == "" {
		err = errEmptyResponse
	}
	if err != nil {
		metrics.IncGeneration(kind, metrics.OutcomeFailure)
		telemetry.Error("advice.generation_failed", map[string]any{
			"kind":  kind,
			"model": s.Model,
			"error": err,
		})
		return "", err
	}
	metrics.IncGeneration(kind, metrics.OutcomeSuccess)
	return strings.TrimSpace(out), nil
}

func (s *Service) recommendConfig() llm.GenerationConfig {
	if s.Config == (llm.GenerationConfig{}) {
		return llm.DefaultConfig()
	}
	return s.Config
}
