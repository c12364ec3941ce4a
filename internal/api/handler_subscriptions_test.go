package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutSubscription_InvalidBody(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/subscriptions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionRoundTrip(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPut, "/api/subscriptions", gin.H{
		"endpoint":  "https://push.example.com/sub-1",
		"p256dh":    "key",
		"auth":      "secret",
		"equipment": []string{"Main Engine", "Generator"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/subscriptions?endpoint=https://push.example.com/sub-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"equipment":["Generator","Main Engine"]}`, w.Body.String())

	// Replacing the subscription replaces its equipment set.
	w = doJSON(t, router, http.MethodPut, "/api/subscriptions", gin.H{
		"endpoint":  "https://push.example.com/sub-1",
		"p256dh":    "key",
		"auth":      "secret",
		"equipment": []string{"Boiler"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/subscriptions?endpoint=https://push.example.com/sub-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"equipment":["Boiler"]}`, w.Body.String())

	w = doJSON(t, router, http.MethodDelete, "/api/subscriptions", gin.H{
		"endpoint": "https://push.example.com/sub-1",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/subscriptions?endpoint=https://push.example.com/sub-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
