package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/advice"
	"retro-backend/internal/entries"
	"retro-backend/internal/feedback"
	"retro-backend/internal/moods"
	"retro-backend/internal/services/health"
	"retro-backend/internal/shared/config"
	"retro-backend/internal/shared/metrics"
	"retro-backend/internal/shared/server/middleware"
	"retro-backend/internal/shared/server/respond"
)

// RateLimitGroupAI covers every route that calls the text generator.
const RateLimitGroupAI = "AI"

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	AdviceHandler   *advice.Handler
	EntriesHandler  *entries.Handler
	MoodsHandler    *moods.Handler
	FeedbackHandler *feedback.Handler
	Limiter         *middleware.RateLimiter
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	cfg := deps.Config
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				RateLimitGroupAI: {Rate: cfg.RateLimitAIRPS, Burst: cfg.RateLimitAIBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())
	r.GET("/api", func(c *gin.Context) {
		respond.OK(c, gin.H{"message": "Hello from server!"})
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		status, ok := deps.Health.Status(c.Request.Context())
		if !ok {
			respond.Error(c, http.StatusServiceUnavailable, "unavailable", "dependencies not ready", status)
			return
		}
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "checks": status})
	})
	if deps.EntriesHandler != nil {
		deps.EntriesHandler.RegisterRoutes(api)
	}
	if deps.MoodsHandler != nil {
		deps.MoodsHandler.RegisterRoutes(api)
	}
	if deps.FeedbackHandler != nil {
		deps.FeedbackHandler.RegisterRoutes(api)
	}
	if deps.AdviceHandler != nil {
		deps.AdviceHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	path := c.FullPath()
	if strings.HasPrefix(path, "/api/v1/ai/") || strings.HasSuffix(path, "/summary") {
		return RateLimitGroupAI
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
