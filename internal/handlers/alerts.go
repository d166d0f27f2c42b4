package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trolleywise/price-service/internal/appstate"
	"github.com/trolleywise/price-service/internal/stores"
)

// CreateAlertRequest is the payload for creating a price alert.
type CreateAlertRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	TargetPrice int64  `json:"targetPrice" binding:"required,min=1"`
	StoreID     string `json:"storeId"`
}

// ListAlerts returns all price alerts.
// GET /api/v1/alerts
func (h *Handlers) ListAlerts(c *gin.Context) {
	state := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"alerts": state.PriceAlerts})
}

// CreateAlert registers a new price alert.
// POST /api/v1/alerts
func (h *Handlers) CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.Snapshot()
	if _, ok := state.FindProduct(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if req.StoreID != "" && !stores.IsValidStore(req.StoreID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown store"})
		return
	}

	alert := appstate.PriceAlert{
		ID:          uuid.NewString(),
		ProductID:   req.ProductID,
		TargetPrice: req.TargetPrice,
		StoreID:     req.StoreID,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	h.store.Dispatch(appstate.AddPriceAlert{Alert: alert})

	c.JSON(http.StatusCreated, alert)
}

// TriggeredAlerts evaluates all active alerts against current prices.
// GET /api/v1/alerts/triggered
func (h *Handlers) TriggeredAlerts(c *gin.Context) {
	state := h.store.Snapshot()
	triggered := appstate.EvaluateAlerts(state)
	if triggered == nil {
		triggered = []appstate.TriggeredAlert{}
	}
	c.JSON(http.StatusOK, gin.H{"triggered": triggered})
}

// DeleteAlert removes a price alert.
// DELETE /api/v1/alerts/:id
func (h *Handlers) DeleteAlert(c *gin.Context) {
	alertID := c.Param("id")

	state := h.store.Snapshot()
	found := false
	for _, a := range state.PriceAlerts {
		if a.ID == alertID {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "price alert not found"})
		return
	}

	h.store.Dispatch(appstate.RemovePriceAlert{AlertID: alertID})
	c.Status(http.StatusNoContent)
}
