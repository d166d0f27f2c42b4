package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trolleywise/price-service/internal/persistence"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Health returns a health check handler that probes the persistence store.
func Health(persister persistence.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{Status: "ok"}

		if _, err := persister.Exists(c.Request.Context(), persistence.KeySettings); err != nil {
			response.Storage = "unavailable"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
		response.Storage = "ok"
		c.JSON(http.StatusOK, response)
	}
}
