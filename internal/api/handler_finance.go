package api

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-maintenance-backend/internal/schedule"
)

// financeEstimates is the toy cost projection over the current ledger and
// alert state: operating cost is hours times a per-equipment hourly rate,
// maintenance cost sums the per-tier service costs of active alerts.
type financeEstimates struct {
	TotalHours        float64 `json:"totalHours"`
	OperatingCost     float64 `json:"operatingCost"`
	MaintenanceCost   float64 `json:"maintenanceCost"`
	PreventiveSavings float64 `json:"preventiveSavings"`
	ROIPercent        float64 `json:"roiPercent"`
}

// GetFinanceEstimates handles GET /api/finance/estimates. This is a pure
// read-side projection; ?equipment= narrows every figure, ?vessel= narrows
// the record-derived figures (hours and operating cost).
func (h *Handler) GetFinanceEstimates(c *gin.Context) {
	vesselFilter := c.Query("vessel")
	equipmentFilter := c.Query("equipment")

	records, err := h.store.ListRecords(c.Request.Context(), vesselFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list records"})
		return
	}
	alerts, err := h.store.ListAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}
	aggregates, err := h.store.ListEquipmentHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list equipment hours"})
		return
	}

	var est financeEstimates
	for _, record := range records {
		if equipmentFilter != "" && record.EquipmentID != equipmentFilter {
			continue
		}
		est.TotalHours += record.WorkingHours
		est.OperatingCost += record.WorkingHours * h.costs.OperatingRates[record.EquipmentID]
	}

	for _, alert := range alerts {
		if equipmentFilter != "" && alert.EquipmentID != equipmentFilter {
			continue
		}
		est.MaintenanceCost += h.costs.CostForTier(schedule.Tier(alert.Tier))
	}

	// Assumed breakdown rate of 0.3 per full 1000 operating hours on each
	// equipment when no preventive maintenance is done; each avoided
	// breakdown is priced as a major service. Computed over the live
	// aggregates, so a service reset restarts the projection. The ?vessel=
	// filter does not apply here: aggregates are kept fleet-wide.
	var potentialBreakdowns float64
	for _, agg := range aggregates {
		if equipmentFilter != "" && agg.EquipmentID != equipmentFilter {
			continue
		}
		potentialBreakdowns += math.Floor(agg.Hours/1000) * 0.3
	}
	est.PreventiveSavings = potentialBreakdowns * h.costs.MajorServiceCost
	if est.MaintenanceCost > 0 {
		est.ROIPercent = (est.PreventiveSavings - est.MaintenanceCost) / est.MaintenanceCost * 100
	}

	c.JSON(http.StatusOK, est)
}
