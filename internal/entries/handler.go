package entries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"retro-backend/internal/shared/server/middleware"
	"retro-backend/internal/shared/server/query"
	"retro-backend/internal/shared/server/respond"
	"retro-backend/internal/shared/telemetry"
	"retro-backend/internal/shared/validate"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches entry routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/data", h.create)
	rg.GET("/data", h.list)
}

func (h *Handler) create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		msg := "invalid JSON body"
		if errors.Is(err, ErrInvalidValue) {
			msg = "value must be a number"
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", msg, nil)
		return
	}

	entry, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		var fe *validate.FieldError
		switch {
		case errors.As(err, &fe):
			respond.Error(c, http.StatusBadRequest, "validation_error", fe.Error(), gin.H{"field": fe.Field})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save data", nil)
		}
		return
	}

	c.Set(middleware.RecordIDKey, entry.ID)
	telemetry.Info("entry.created", map[string]any{"entry_id": entry.ID, "name": entry.Name})
	respond.Created(c, "Data saved successfully", entry)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := query.Paging(c, defaultPageSize, maxPageSize)
	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list data", nil)
		return
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}
