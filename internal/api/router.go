package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"fleet-maintenance-backend/config"
	"fleet-maintenance-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, srv config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimiter(rate.Limit(srv.RateLimitPerSec), srv.RateLimitBurst)

	// Cache is applied only to static fleet configuration; everything else
	// must reflect the latest committed state.
	cacheTTL := time.Duration(srv.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/records", h.PostRecord)
		api.DELETE("/records/:id", h.DeleteRecord)
		api.GET("/records", h.GetRecords)

		api.GET("/equipment", h.GetEquipment)
		api.GET("/equipment/:name/hours", h.GetEquipmentHours)
		api.GET("/equipment/:name/status", h.GetEquipmentStatus)
		api.POST("/equipment/:name/reset", h.PostEquipmentReset)

		api.GET("/alerts", h.GetAlerts)
		api.DELETE("/alerts/:id", h.DeleteAlert)

		api.GET("/vessels", h.GetVessels)
		api.POST("/vessels", h.PostVessel)
		api.GET("/fleet/types", caching, h.GetFleetTypes)

		api.GET("/finance/estimates", h.GetFinanceEstimates)

		api.POST("/ism/events", h.PostISMEvent)
		api.GET("/ism/events", h.GetISMEvents)
		api.DELETE("/ism/events/:id", h.DeleteISMEvent)

		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
