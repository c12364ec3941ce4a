package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleet-maintenance-backend/internal/model"
	"fleet-maintenance-backend/internal/store"
)

type addISMEventRequest struct {
	EventType   string    `json:"eventType" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Action      string    `json:"action"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date" binding:"required"`
}

// PostISMEvent handles POST /api/ism/events.
func (h *Handler) PostISMEvent(c *gin.Context) {
	var req addISMEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := model.ISMEvent{
		EventType:   req.EventType,
		Description: req.Description,
		Action:      req.Action,
		Status:      req.Status,
		Date:        req.Date,
	}
	err := h.store.AddISMEvent(c.Request.Context(), &event)
	switch {
	case errors.Is(err, store.ErrInvalidEventType),
		errors.Is(err, store.ErrInvalidEventStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store ISM event"})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetISMEvents handles GET /api/ism/events.
func (h *Handler) GetISMEvents(c *gin.Context) {
	events, err := h.store.ListISMEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ISM events"})
		return
	}
	if events == nil {
		events = []model.ISMEvent{}
	}
	c.JSON(http.StatusOK, events)
}

// DeleteISMEvent handles DELETE /api/ism/events/:id. Unknown ids still
// return 204.
func (h *Handler) DeleteISMEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.store.DeleteISMEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete ISM event"})
		return
	}
	c.Status(http.StatusNoContent)
}
