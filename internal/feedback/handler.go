package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/advice"
	"retro-backend/internal/shared/metrics"
	"retro-backend/internal/shared/server/middleware"
	"retro-backend/internal/shared/server/query"
	"retro-backend/internal/shared/server/respond"
	"retro-backend/internal/shared/validate"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches feedback routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.create)
	rg.GET("/feedback", h.list)
	rg.GET("/feedback/:id", h.get)
	rg.POST("/feedback/:id/summary", h.summarize)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	note, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			respond.Error(c, http.StatusBadRequest, "validation_error", fe.Error(), gin.H{"field": fe.Field})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save feedback", nil)
		return
	}
	c.Set(middleware.RecordIDKey, note.ID)
	respond.Created(c, "Feedback saved successfully", note)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := query.Paging(c, 50, 200)
	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list feedback", nil)
		return
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.RecordIDKey, id)
	note, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "feedback not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load feedback", nil)
		return
	}
	respond.OK(c, note)
}

func (h *Handler) summarize(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.RecordIDKey, id)
	c.Set(middleware.GenerationKindKey, metrics.KindSummary)

	summary, err := h.Svc.Summarize(c.Request.Context(), id)
	if err != nil {
		var genErr *advice.GenerationError
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "feedback not found", nil)
		case errors.Is(err, advice.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, advice.ErrorCodeValidation, err.Error(), nil)
		case errors.As(err, &genErr):
			respond.Error(c, http.StatusBadGateway, advice.ErrorCodeGenerationFailed, genErr.PublicMessage("failed to generate summary"), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize feedback", nil)
		}
		return
	}
	respond.OK(c, gin.H{"id": id, "summary": summary})
}
