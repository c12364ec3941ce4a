package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleet-maintenance-backend/config"
	"fleet-maintenance-backend/internal/api"
	"fleet-maintenance-backend/internal/db"
	"fleet-maintenance-backend/internal/model"
	"fleet-maintenance-backend/internal/schedule"
	"fleet-maintenance-backend/internal/store"
)

// TestMaintenanceLifecycle walks one piece of equipment through the whole
// alert state machine over the HTTP boundary: accrual below threshold, the
// inspection crossing, escalation to major, a correcting deletion that
// downgrades, and a post-service reset back to a clean slate.
func TestMaintenanceLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:lifecycle?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()
	require.NoError(t, db.Migrate(testDB))

	sched := schedule.Default()
	appStore := store.NewGormStore(testDB, sched)
	handler := api.NewHandler(appStore, sched, &config.CostConfig{
		OperatingRates: map[string]float64{"Main Engine": 150},
	}, nil, nil)
	router := api.NewRouter(handler, config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 60,
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	postHours := func(hours float64) model.WorkRecord {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		w := do(http.MethodPost, "/api/records", gin.H{
			"vesselId":    "9316426",
			"equipmentId": "Main Engine",
			"activity":    "Cargo Operation",
			"startTime":   start.Format(time.RFC3339),
			"stopTime":    start.Add(time.Duration(hours * float64(time.Hour))).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var record model.WorkRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		return record
	}

	currentAlerts := func() []model.MaintenanceAlert {
		w := do(http.MethodGet, "/api/alerts", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var alerts []model.MaintenanceAlert
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
		return alerts
	}

	currentHours := func() float64 {
		w := do(http.MethodGet, "/api/equipment/Main%20Engine/hours", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Hours float64 `json:"hours"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Hours
	}

	w := do(http.MethodPost, "/api/vessels", gin.H{
		"imoNumber": "9316426", "vesselName": "MT Aurora", "vesselType": "tanker",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("accrual below inspection raises nothing", func(t *testing.T) {
		postHours(1500)
		assert.InDelta(t, 1500, currentHours(), 1e-9)
		assert.Empty(t, currentAlerts())
	})

	var downgradeTarget model.WorkRecord
	t.Run("crossing thresholds escalates a single alert", func(t *testing.T) {
		postHours(1500) // total 3000: inspection
		alerts := currentAlerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, "inspection", alerts[0].Tier)

		downgradeTarget = postHours(7001) // total 10001: major
		alerts = currentAlerts()
		require.Len(t, alerts, 1, "escalation must replace, not append")
		assert.Equal(t, "major", alerts[0].Tier)
		assert.Equal(t, "high", alerts[0].Priority)
		assert.Contains(t, alerts[0].Message, "Main Engine")
	})

	t.Run("deleting a record downgrades the alert", func(t *testing.T) {
		w := do(http.MethodDelete, fmt.Sprintf("/api/records/%d", downgradeTarget.ID), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		// Back to 3000 hours: major falls to inspection.
		assert.InDelta(t, 3000, currentHours(), 1e-9)
		alerts := currentAlerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, "inspection", alerts[0].Tier)
	})

	t.Run("reset models maintenance performed", func(t *testing.T) {
		w := do(http.MethodPost, "/api/equipment/Main%20Engine/reset", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		assert.Zero(t, currentHours())
		assert.Empty(t, currentAlerts())

		// Records survive the reset; only the aggregate starts over.
		w = do(http.MethodGet, "/api/records", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var records []model.WorkRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 2)

		postHours(100)
		assert.InDelta(t, 100, currentHours(), 1e-9)
		assert.Empty(t, currentAlerts())
	})
}
