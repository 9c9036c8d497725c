package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/shared/telemetry"
)

// Keys handlers may set on the gin context to enrich the request log.
const (
	RecordIDKey        = "recordId"
	GenerationKindKey  = "generationKind"
	RecommendationsKey = "recommendationCount"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		fields := map[string]any{
			"request_id":  reqID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if v, ok := c.Get(RecordIDKey); ok {
			fields["record_id"] = v
		}
		if v, ok := c.Get(GenerationKindKey); ok {
			fields["generation_kind"] = v
		}
		if v, ok := c.Get(RecommendationsKey); ok {
			fields["recommendation_count"] = v
		}
		telemetry.Info("request.complete", fields)
	}
}
