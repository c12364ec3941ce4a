package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-maintenance-backend/internal/schedule"
)

// GetFleetTypes handles GET /api/fleet/types: the supported ship types with
// their equipment and activity lists, for populating submission forms.
func (h *Handler) GetFleetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, schedule.ShipTypes())
}
