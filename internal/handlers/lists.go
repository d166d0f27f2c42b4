package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trolleywise/price-service/internal/appstate"
)

// CreateShoppingListRequest is the payload for creating a list.
type CreateShoppingListRequest struct {
	Name string `json:"name"`
}

// UpdateShoppingListRequest is the payload for renaming a list.
type UpdateShoppingListRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddListItemRequest is the payload for adding a product to a list.
type AddListItemRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	Quantity       int    `json:"quantity" binding:"omitempty,min=1"`
	PreferredStore string `json:"preferredStore"`
	Notes          string `json:"notes"`
}

// ListShoppingLists returns all shopping lists.
// GET /api/v1/lists
func (h *Handlers) ListShoppingLists(c *gin.Context) {
	state := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"lists": state.ShoppingLists})
}

// CreateShoppingList creates a new list. An empty name falls back to the
// default list name.
// POST /api/v1/lists
func (h *Handlers) CreateShoppingList(c *gin.Context) {
	var req CreateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := req.Name
	if name == "" {
		name = appstate.DefaultListName
	}

	now := time.Now()
	list := appstate.ShoppingList{
		ID:        uuid.NewString(),
		Name:      name,
		Items:     []appstate.ShoppingListItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	h.store.Dispatch(appstate.AddShoppingList{List: list})

	c.JSON(http.StatusCreated, list)
}

// GetShoppingList returns one list by id.
// GET /api/v1/lists/:id
func (h *Handlers) GetShoppingList(c *gin.Context) {
	state := h.store.Snapshot()
	list, ok := state.FindList(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateShoppingList renames a list.
// PUT /api/v1/lists/:id
func (h *Handlers) UpdateShoppingList(c *gin.Context) {
	var req UpdateShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.Snapshot()
	list, ok := state.FindList(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		return
	}

	list.Name = req.Name
	list.UpdatedAt = time.Now()
	h.store.Dispatch(appstate.UpdateShoppingList{List: list})

	c.JSON(http.StatusOK, list)
}

// DeleteShoppingList removes a list. Deleting an unknown id is a no-op at
// the state level but reported as 404 here.
// DELETE /api/v1/lists/:id
func (h *Handlers) DeleteShoppingList(c *gin.Context) {
	listID := c.Param("id")

	state := h.store.Snapshot()
	if _, ok := state.FindList(listID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		return
	}

	h.store.Dispatch(appstate.DeleteShoppingList{ListID: listID})
	c.Status(http.StatusNoContent)
}

// AddListItem adds a product to a list. The special id "default" targets
// the "My Shopping List" list, creating it when absent. Re-adding a product
// already on the list increments its quantity.
// POST /api/v1/lists/:id/items
func (h *Handlers) AddListItem(c *gin.Context) {
	var req AddListItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state := h.store.Snapshot()
	if _, ok := state.FindProduct(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	item := appstate.ShoppingListItem{
		ProductID:      req.ProductID,
		Quantity:       quantity,
		PreferredStore: req.PreferredStore,
		Notes:          req.Notes,
	}

	listID := c.Param("id")
	var list appstate.ShoppingList
	if listID == "default" {
		listID = h.store.AddToDefaultList(item)
		list, _ = h.store.Snapshot().FindList(listID)
	} else {
		var ok bool
		list, ok = h.store.AddToList(listID, item)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
			return
		}
	}

	c.JSON(http.StatusOK, list)
}

// RemoveListItem removes a product from a list.
// DELETE /api/v1/lists/:id/items/:productId
func (h *Handlers) RemoveListItem(c *gin.Context) {
	list, ok := h.store.RemoveFromList(c.Param("id"), c.Param("productId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		return
	}
	c.JSON(http.StatusOK, list)
}
