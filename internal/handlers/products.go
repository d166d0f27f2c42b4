package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/pricing"
)

// ListProductsRequest represents query parameters for product search
type ListProductsRequest struct {
	Query        string   `form:"query"`
	Category     string   `form:"category"`
	Stores       []string `form:"store"`
	MinPrice     int64    `form:"minPrice" binding:"min=0"`
	MaxPrice     int64    `form:"maxPrice" binding:"min=0"`
	Availability string   `form:"availability"`
	Sort         string   `form:"sort"`
}

// ProductSummary is a catalog product plus its derived comparison fields.
type ProductSummary struct {
	catalog.Product
	CheapestStore string `json:"cheapestStore,omitempty"`
	CheapestPrice int64  `json:"cheapestPrice"`
	TotalSavings  int64  `json:"totalSavings"`
}

func summarize(p catalog.Product) ProductSummary {
	cheapest, _ := catalog.CheapestStore(p)
	return ProductSummary{
		Product:       p,
		CheapestStore: cheapest,
		CheapestPrice: catalog.CheapestPrice(p),
		TotalSavings:  catalog.TotalSavings(p),
	}
}

// ListProducts searches and filters the catalog.
// GET /api/v1/products?query=milk&category=dairy&sort=price-asc
func (h *Handlers) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := catalog.SearchFilters{
		Category:     catalog.Category(req.Category),
		Stores:       req.Stores,
		Availability: catalog.AvailabilityFilter(req.Availability),
		SortBy:       catalog.SortOrder(req.Sort),
	}
	if req.MinPrice > 0 || req.MaxPrice > 0 {
		max := req.MaxPrice
		if max == 0 {
			max = int64(1) << 40
		}
		filters.PriceRange = &catalog.PriceRange{Min: req.MinPrice, Max: max}
	}

	state := h.store.Snapshot()
	matched := catalog.Filter(state.Products, req.Query, filters)

	summaries := make([]ProductSummary, len(matched))
	for i, p := range matched {
		summaries[i] = summarize(p)
	}

	c.JSON(http.StatusOK, gin.H{
		"products": summaries,
		"total":    len(summaries),
	})
}

// GetProduct returns one product with its full store comparison. The
// product's history is omitted here; fetch it from the history endpoint.
// GET /api/v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	state := h.store.Snapshot()
	product, ok := state.FindProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	summary := summarize(product)
	summary.PriceHistory = nil
	c.JSON(http.StatusOK, summary)
}

// GetPriceHistory returns the trailing 31-day history for a product,
// optionally narrowed to a single store.
// GET /api/v1/products/:id/history?store=aldi
func (h *Handlers) GetPriceHistory(c *gin.Context) {
	state := h.store.Snapshot()
	product, ok := state.FindProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	history := product.PriceHistory
	if storeID := c.Query("store"); storeID != "" {
		filtered := make([]pricing.PriceHistoryEntry, 0, pricing.HistoryDays)
		for _, e := range history {
			if e.StoreID == storeID {
				filtered = append(filtered, e)
			}
		}
		history = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"productId": product.ID,
		"history":   history,
	})
}
