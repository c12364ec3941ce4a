package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleet-maintenance-backend/internal/notification"
	"fleet-maintenance-backend/internal/store"
)

type addRecordRequest struct {
	VesselID    string    `json:"vesselId" binding:"required"`
	EquipmentID string    `json:"equipmentId" binding:"required"`
	Activity    string    `json:"activity"`
	Status      string    `json:"status"`
	Remarks     string    `json:"remarks"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	StopTime    time.Time `json:"stopTime" binding:"required"`
}

// PostRecord handles POST /api/records.
func (h *Handler) PostRecord(c *gin.Context) {
	var req addRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, alert, err := h.store.AddRecord(c.Request.Context(), store.RecordInput{
		VesselID:    req.VesselID,
		EquipmentID: req.EquipmentID,
		Activity:    req.Activity,
		Status:      req.Status,
		Remarks:     req.Remarks,
		StartTime:   req.StartTime,
		StopTime:    req.StopTime,
	})
	switch {
	case errors.Is(err, store.ErrInvalidTimeRange),
		errors.Is(err, store.ErrUnknownVessel),
		errors.Is(err, store.ErrEquipmentNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store record"})
		return
	}

	if alert != nil && h.pool != nil {
		h.pool.Dispatch(notification.AlertJob{
			EquipmentID: alert.EquipmentID,
			Message:     alert.Message,
		})
	}

	c.JSON(http.StatusCreated, record)
}

// DeleteRecord handles DELETE /api/records/:id. Unknown ids still return 204.
func (h *Handler) DeleteRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	if err := h.store.DeleteRecord(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete record"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRecords handles GET /api/records, optionally filtered by ?vessel=.
func (h *Handler) GetRecords(c *gin.Context) {
	records, err := h.store.ListRecords(c.Request.Context(), c.Query("vessel"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list records"})
		return
	}
	c.JSON(http.StatusOK, records)
}
