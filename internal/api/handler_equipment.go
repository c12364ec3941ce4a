package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetEquipment handles GET /api/equipment: every hour aggregate.
func (h *Handler) GetEquipment(c *gin.Context) {
	aggs, err := h.store.ListEquipmentHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list equipment hours"})
		return
	}
	c.JSON(http.StatusOK, aggs)
}

// GetEquipmentHours handles GET /api/equipment/:name/hours. Equipment that
// never accrued reports zero.
func (h *Handler) GetEquipmentHours(c *gin.Context) {
	name := c.Param("name")
	hours, err := h.store.EquipmentHours(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch equipment hours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipmentId": name, "hours": hours})
}

// GetEquipmentStatus handles GET /api/equipment/:name/status: a read-side
// projection of how far the equipment is from its next service.
func (h *Handler) GetEquipmentStatus(c *gin.Context) {
	name := c.Param("name")
	thresholds, ok := h.sched.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no maintenance schedule for this equipment"})
		return
	}

	hours, err := h.store.EquipmentHours(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch equipment hours"})
		return
	}

	progress := thresholds.ProgressAt(hours)
	c.JSON(http.StatusOK, gin.H{
		"equipmentId": name,
		"hours":       hours,
		"progress":    progress,
	})
}

// PostEquipmentReset handles POST /api/equipment/:name/reset: maintenance was
// performed, hours go back to zero and the alert is cleared.
func (h *Handler) PostEquipmentReset(c *gin.Context) {
	if err := h.store.ResetEquipment(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset equipment"})
		return
	}
	c.Status(http.StatusNoContent)
}
