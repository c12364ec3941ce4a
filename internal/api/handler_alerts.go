package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-maintenance-backend/internal/model"
)

// GetAlerts handles GET /api/alerts.
func (h *Handler) GetAlerts(c *gin.Context) {
	alerts, err := h.store.ListAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}
	if alerts == nil {
		alerts = []model.MaintenanceAlert{}
	}
	c.JSON(http.StatusOK, alerts)
}

// DeleteAlert handles DELETE /api/alerts/:id. Dismissal is not sticky: the
// next accrual re-creates the alert if the hours still qualify.
func (h *Handler) DeleteAlert(c *gin.Context) {
	if err := h.store.DismissAlert(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to dismiss alert"})
		return
	}
	c.Status(http.StatusNoContent)
}
