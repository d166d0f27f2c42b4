package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trolleywise/price-service/internal/appstate"
	"github.com/trolleywise/price-service/internal/stores"
)

// GetSettings returns the current user settings.
// GET /api/v1/settings
func (h *Handlers) GetSettings(c *gin.Context) {
	state := h.store.Snapshot()
	c.JSON(http.StatusOK, state.Settings)
}

// UpdateSettings shallow-merges a partial settings payload; omitted fields
// keep their current values.
// PATCH /api/v1/settings
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var patch appstate.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if patch.Theme != nil {
		switch *patch.Theme {
		case appstate.ThemeLight, appstate.ThemeDark, appstate.ThemeSystem:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown theme"})
			return
		}
	}
	if patch.Currency != nil && *patch.Currency != "GBP" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency is fixed to GBP"})
		return
	}
	if patch.DefaultStore != nil && *patch.DefaultStore != "" && !stores.IsValidStore(*patch.DefaultStore) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown store"})
		return
	}

	h.store.Dispatch(appstate.UpdateSettings{Patch: patch})
	c.JSON(http.StatusOK, h.store.Snapshot().Settings)
}
