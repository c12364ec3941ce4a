package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-maintenance-backend/internal/model"
	"fleet-maintenance-backend/internal/schedule"
	"fleet-maintenance-backend/internal/store"
)

type addVesselRequest struct {
	IMONumber  string `json:"imoNumber" binding:"required"`
	VesselName string `json:"vesselName" binding:"required"`
	VesselType string `json:"vesselType" binding:"required"`
}

// PostVessel handles POST /api/vessels.
func (h *Handler) PostVessel(c *gin.Context) {
	var req addVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := schedule.ShipTypes()[req.VesselType]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vessel type"})
		return
	}

	vessel := model.Vessel{
		IMONumber: req.IMONumber,
		Name:      req.VesselName,
		Type:      req.VesselType,
	}
	err := h.store.AddVessel(c.Request.Context(), &vessel)
	switch {
	case errors.Is(err, store.ErrDuplicateVessel):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register vessel"})
		return
	}

	c.JSON(http.StatusCreated, vessel)
}

// GetVessels handles GET /api/vessels.
func (h *Handler) GetVessels(c *gin.Context) {
	vessels, err := h.store.ListVessels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vessels"})
		return
	}
	if vessels == nil {
		vessels = []model.Vessel{}
	}
	c.JSON(http.StatusOK, vessels)
}
