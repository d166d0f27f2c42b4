// Package handlers exposes the catalog, shopping lists, price alerts, and
// settings over HTTP. State access goes through an injected appstate.Store;
// handlers never hold state of their own.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/trolleywise/price-service/internal/appstate"
)

// Handlers bundles the API endpoints around the shared state store.
type Handlers struct {
	store  *appstate.Store
	logger zerolog.Logger
}

// New creates the handler set for the given state store.
func New(store *appstate.Store, logger zerolog.Logger) *Handlers {
	return &Handlers{
		store:  store,
		logger: logger.With().Str("component", "handlers").Logger(),
	}
}

// Register wires all API routes onto the given router group.
func (h *Handlers) Register(api *gin.RouterGroup) {
	api.GET("/stores", h.ListStores)
	api.GET("/stores/:id", h.GetStore)

	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/products/:id/history", h.GetPriceHistory)

	api.GET("/lists", h.ListShoppingLists)
	api.POST("/lists", h.CreateShoppingList)
	api.GET("/lists/:id", h.GetShoppingList)
	api.PUT("/lists/:id", h.UpdateShoppingList)
	api.DELETE("/lists/:id", h.DeleteShoppingList)
	api.POST("/lists/:id/items", h.AddListItem)
	api.DELETE("/lists/:id/items/:productId", h.RemoveListItem)

	api.GET("/alerts", h.ListAlerts)
	api.POST("/alerts", h.CreateAlert)
	api.GET("/alerts/triggered", h.TriggeredAlerts)
	api.DELETE("/alerts/:id", h.DeleteAlert)

	api.GET("/settings", h.GetSettings)
	api.PATCH("/settings", h.UpdateSettings)
}
