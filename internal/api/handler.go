package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"fleet-maintenance-backend/config"
	"fleet-maintenance-backend/internal/notification"
	"fleet-maintenance-backend/internal/schedule"
	"fleet-maintenance-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	sched   schedule.Schedule
	costs   *config.CostConfig
	pool    *notification.WorkerPool
	webpush *webpush.Options
}

// NewHandler creates a new API handler. pool may be nil when push
// notifications are not configured.
func NewHandler(s store.Store, sched schedule.Schedule, costs *config.CostConfig, pool *notification.WorkerPool, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:   s,
		sched:   sched,
		costs:   costs,
		pool:    pool,
		webpush: webpushOptions,
	}
}
