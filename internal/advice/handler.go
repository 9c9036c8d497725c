package advice

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/shared/metrics"
	"retro-backend/internal/shared/server/middleware"
	"retro-backend/internal/shared/server/respond"
)

// Handler exposes the advice service over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the AI routes under /ai.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/recommendations", h.recommend)
	ai.POST("/recommendations/recent", h.recommendRecent)
	ai.POST("/summary", h.summarize)
}

type summaryRequest struct {
	Text string `json:"text"`
}

func (h *Handler) recommend(c *gin.Context) {
	c.Set(middleware.GenerationKindKey, metrics.KindRecommendations)
	var input RetrospectiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	recs, err := h.Svc.Recommend(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, "failed to generate recommendations")
		return
	}
	c.Set(middleware.RecommendationsKey, len(recs))
	respond.OK(c, gin.H{"recommendations": recs})
}

func (h *Handler) recommendRecent(c *gin.Context) {
	c.Set(middleware.GenerationKindKey, metrics.KindRecommendations)
	limit := DefaultRecentLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "limit must be a positive integer", nil)
			return
		}
		limit = v
	}
	recs, err := h.Svc.RecommendFromRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err, "failed to generate recommendations")
		return
	}
	c.Set(middleware.RecommendationsKey, len(recs))
	respond.OK(c, gin.H{"recommendations": recs})
}

func (h *Handler) summarize(c *gin.Context) {
	c.Set(middleware.GenerationKindKey, metrics.KindSummary)
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	summary, err := h.Svc.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		writeError(c, err, "failed to generate summary")
		return
	}
	respond.OK(c, gin.H{"summary": summary})
}

func writeError(c *gin.Context, err error, fallback string) {
	var invalid *InvalidInputError
	var genErr *GenerationError
	switch {
	case errors.As(err, &invalid):
		var details any
		if invalid.Field != "" {
			details = gin.H{"field": invalid.Field}
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, invalid.Error(), details)
	case errors.As(err, &genErr):
		respond.Error(c, http.StatusBadGateway, ErrorCodeGenerationFailed, genErr.PublicMessage(fallback), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
