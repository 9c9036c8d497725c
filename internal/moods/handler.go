package moods

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/shared/server/middleware"
	"retro-backend/internal/shared/server/query"
	"retro-backend/internal/shared/server/respond"
	"retro-backend/internal/shared/validate"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches mood routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/emotions", h.create)
	rg.GET("/emotions", h.list)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	mood, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			respond.Error(c, http.StatusBadRequest, "validation_error", fe.Error(), gin.H{"field": fe.Field})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save emotion", nil)
		return
	}
	c.Set(middleware.RecordIDKey, mood.ID)
	respond.Created(c, "Emotion saved successfully", mood)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := query.Paging(c, 50, 200)
	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list emotions", nil)
		return
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}
