package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trolleywise/price-service/internal/stores"
)

// ListStores returns the fixed store roster.
// GET /api/v1/stores
func (h *Handlers) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stores": stores.Roster()})
}

// GetStore returns a single store by slug.
// GET /api/v1/stores/:id
func (h *Handlers) GetStore(c *gin.Context) {
	store, ok := stores.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
		return
	}
	c.JSON(http.StatusOK, store)
}
