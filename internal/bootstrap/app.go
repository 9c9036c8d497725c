package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/advice"
	"retro-backend/internal/entries"
	"retro-backend/internal/feedback"
	"retro-backend/internal/llm"
	"retro-backend/internal/moods"
	"retro-backend/internal/services/health"
	"retro-backend/internal/shared/config"
	"retro-backend/internal/shared/server"
	"retro-backend/internal/shared/server/middleware"
	"retro-backend/internal/shared/storage/db"
	"retro-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the HTTP router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Generator       llm.Generator
	Cache           advice.SummaryCache
	EntriesService  *entries.Service
	MoodsService    *moods.Service
	FeedbackService *feedback.Service
	AdviceService   *advice.Service
	EntriesHandler  *entries.Handler
	MoodsHandler    *moods.Handler
	FeedbackHandler *feedback.Handler
	AdviceHandler   *advice.Handler
	Health          *health.Service

	closers []func() error
}

// Option overrides a dependency Build would otherwise construct.
type Option func(*App)

// WithGenerator injects a text generator, bypassing provider configuration.
func WithGenerator(g llm.Generator) Option {
	return func(a *App) { a.Generator = g }
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.DB = sqlDB
	if sqlDB != nil {
		app.closers = append(app.closers, sqlDB.Close)
	}

	if app.Generator == nil {
		gen, model, err := BuildGenerator(cfg)
		if err != nil {
			if !cfg.IsLocal() {
				return nil, err
			}
			telemetry.Warn("bootstrap.generator_unavailable", map[string]any{"provider": cfg.LLMProvider, "error": err})
			gen = llm.PlaceholderClient{}
		}
		app.Generator = gen
		cfg.LLMModel = model
	}

	app.Health = health.NewService()
	if app.DB != nil {
		app.Health.Register("database", app.DB.PingContext)
	}
	app.Cache = buildCache(ctx, app, cfg)
	buildServices(app, cfg)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AdviceHandler:   app.AdviceHandler,
		EntriesHandler:  app.EntriesHandler,
		MoodsHandler:    app.MoodsHandler,
		FeedbackHandler: app.FeedbackHandler,
		Limiter:         middleware.NewRateLimiter(nil),
		Health:          app.Health,
	})
	return app, nil
}

// Close releases database and cache connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsLocal() {
			telemetry.Info("bootstrap.memory_repositories", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		if cfg.IsLocal() {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildCache(ctx context.Context, app *App, cfg config.Config) advice.SummaryCache {
	if strings.TrimSpace(cfg.RedisURL) == "" {
		return advice.NewMemoryCache(nil)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	cache, err := advice.NewRedisCache(pingCtx, cfg.RedisURL)
	if err != nil {
		telemetry.Warn("bootstrap.redis_unavailable", map[string]any{"error": err})
		return advice.NewMemoryCache(nil)
	}
	app.closers = append(app.closers, cache.Close)
	app.Health.Register("redis", cache.Ping)
	return cache
}

func buildServices(app *App, cfg config.Config) {
	var (
		entriesRepo  entries.Repo
		moodsRepo    moods.Repo
		feedbackRepo feedback.Repo
	)
	if app.DB != nil {
		entriesRepo = &entries.PGRepo{DB: app.DB}
		moodsRepo = &moods.PGRepo{DB: app.DB}
		feedbackRepo = &feedback.PGRepo{DB: app.DB}
	} else {
		entriesRepo = entries.NewMemoryRepo()
		moodsRepo = moods.NewMemoryRepo()
		feedbackRepo = feedback.NewMemoryRepo()
	}

	app.EntriesService = &entries.Service{Repo: entriesRepo}
	app.MoodsService = &moods.Service{Repo: moodsRepo}
	app.FeedbackService = &feedback.Service{Repo: feedbackRepo}
	app.AdviceService = &advice.Service{
		Generator:  app.Generator,
		Config:     GenerationConfig(cfg),
		Model:      cfg.LLMModel,
		Cache:      app.Cache,
		CacheTTL:   cfg.SummaryCacheTTL,
		PainPoints: app.FeedbackService,
		MoodNotes:  app.MoodsService,
	}
	app.FeedbackService.Summarizer = app.AdviceService

	app.EntriesHandler = entries.NewHandler(app.EntriesService)
	app.MoodsHandler = moods.NewHandler(app.MoodsService)
	app.FeedbackHandler = feedback.NewHandler(app.FeedbackService)
	app.AdviceHandler = advice.NewHandler(app.AdviceService)
}
