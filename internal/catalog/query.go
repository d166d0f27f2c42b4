package catalog

import (
	"sort"
	"strings"

	"github.com/trolleywise/price-service/internal/pricing"
)

// SortOrder controls product list ordering.
type SortOrder string

const (
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortName      SortOrder = "name"
	SortDiscount  SortOrder = "discount"
)

// AvailabilityFilter narrows results by stock state.
type AvailabilityFilter string

const (
	AvailabilityAll     AvailabilityFilter = "all"
	AvailabilityInStock AvailabilityFilter = "in-stock"
)

// PriceRange bounds the cheapest store price, in pence inclusive.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// SearchFilters is the active filter set. Zero values mean "no constraint".
// Replaced wholesale, never merged.
type SearchFilters struct {
	Category     Category           `json:"category,omitempty"`
	Stores       []string           `json:"stores,omitempty"`
	PriceRange   *PriceRange        `json:"priceRange,omitempty"`
	Availability AvailabilityFilter `json:"availability,omitempty"`
	SortBy       SortOrder          `json:"sortBy,omitempty"`
}

// CheapestStore returns the store id with the lowest in-stock price for the
// product. Ties go to the earlier entry in roster order. Returns ("", false)
// when no store has the product in stock.
func CheapestStore(p Product) (string, bool) {
	best := ""
	var bestPrice int64
	for _, sp := range p.Stores {
		if sp.Availability != pricing.InStock {
			continue
		}
		if best == "" || sp.Price < bestPrice {
			best = sp.StoreID
			bestPrice = sp.Price
		}
	}
	return best, best != ""
}

// CheapestPrice returns the lowest current price across all stores,
// regardless of availability. Zero for a product with no store prices.
func CheapestPrice(p Product) int64 {
	var min int64
	for i, sp := range p.Stores {
		if i == 0 || sp.Price < min {
			min = sp.Price
		}
	}
	return min
}

// TotalSavings is the spread between the dearest and cheapest in-stock
// prices. Zero when fewer than two stores have stock.
func TotalSavings(p Product) int64 {
	var min, max int64
	count := 0
	for _, sp := range p.Stores {
		if sp.Availability != pricing.InStock {
			continue
		}
		if count == 0 {
			min, max = sp.Price, sp.Price
		} else {
			if sp.Price < min {
				min = sp.Price
			}
			if sp.Price > max {
				max = sp.Price
			}
		}
		count++
	}
	if count < 2 {
		return 0
	}
	return max - min
}

// MatchesQuery reports whether the product matches a free-text query:
// case-insensitive substring over name, brand, and tags.
func MatchesQuery(p Product, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// maxDiscount is the largest per-store discount annotation on the product.
func maxDiscount(p Product) int64 {
	var max int64
	for _, sp := range p.Stores {
		if sp.Discount != nil && *sp.Discount > max {
			max = *sp.Discount
		}
	}
	return max
}

// Filter applies a free-text query plus the filter set and returns a new
// sorted slice. The input is never modified.
func Filter(products []Product, query string, filters SearchFilters) []Product {
	filtered := make([]Product, 0, len(products))

	for _, p := range products {
		if !MatchesQuery(p, query) {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if len(filters.Stores) > 0 && !stockedAtAny(p, filters.Stores) {
			continue
		}
		if filters.PriceRange != nil {
			min := CheapestPrice(p)
			if min < filters.PriceRange.Min || min > filters.PriceRange.Max {
				continue
			}
		}
		if filters.Availability == AvailabilityInStock && !anyInStock(p) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, filters.SortBy)
	return filtered
}

func stockedAtAny(p Product, storeIDs []string) bool {
	for _, sp := range p.Stores {
		if sp.Availability != pricing.InStock {
			continue
		}
		for _, id := range storeIDs {
			if sp.StoreID == id {
				return true
			}
		}
	}
	return false
}

func anyInStock(p Product) bool {
	for _, sp := range p.Stores {
		if sp.Availability == pricing.InStock {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return CheapestPrice(products[i]) < CheapestPrice(products[j])
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return CheapestPrice(products[i]) > CheapestPrice(products[j])
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortDiscount:
		sort.SliceStable(products, func(i, j int) bool {
			return maxDiscount(products[i]) > maxDiscount(products[j])
		})
	default:
		// Relevance: highest rated first.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
