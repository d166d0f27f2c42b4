// Package catalog defines the product catalog and pure query helpers over it.
package catalog

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/trolleywise/price-service/internal/pricing"
	"github.com/trolleywise/price-service/internal/stores"
)

// Category buckets a product for filtering.
type Category string

const (
	CategoryDairy      Category = "dairy"
	CategoryBakery     Category = "bakery"
	CategoryMeat       Category = "meat"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryPantry     Category = "pantry"
	CategoryFrozen     Category = "frozen"
	CategoryBeverages  Category = "beverages"
	CategorySnacks     Category = "snacks"
	CategoryHousehold  Category = "household"
)

// Categories lists all known product categories.
func Categories() []Category {
	return []Category{
		CategoryDairy, CategoryBakery, CategoryMeat, CategoryVegetables,
		CategoryFruits, CategoryPantry, CategoryFrozen, CategoryBeverages,
		CategorySnacks, CategoryHousehold,
	}
}

// Product is a catalog entry with its per-store prices and trailing history.
type Product struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Category     Category                    `json:"category"`
	Brand        string                      `json:"brand,omitempty"`
	Size         string                      `json:"size"`
	Image        string                      `json:"image"`
	Tags         []string                    `json:"tags"`
	IsOrganic    bool                        `json:"isOrganic,omitempty"`
	Rating       float64                     `json:"rating,omitempty"`
	Stores       []pricing.StorePrice        `json:"stores"`
	PriceHistory []pricing.PriceHistoryEntry `json:"priceHistory"`
}

// Generate builds the full catalog from the static definitions, sampling
// prices and history for each product with the given generator. Products
// come out in definition order.
func Generate(gen *pricing.Generator, roster []stores.Store) []Product {
	products := make([]Product, len(definitions))
	for i, def := range definitions {
		products[i] = generateOne(gen, roster, def)
	}
	return products
}

// GenerateParallel builds the catalog with one worker per CPU. Each product
// gets its own generator derived from seed+index, so output is deterministic
// for a fixed seed regardless of scheduling.
func GenerateParallel(ctx context.Context, seed int64, roster []stores.Store) ([]Product, error) {
	products := make([]Product, len(definitions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, def := range definitions {
		i, def := i, def
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gen := pricing.NewGenerator(rand.NewSource(seed + int64(i)))
			products[i] = generateOne(gen, roster, def)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return products, nil
}

func generateOne(gen *pricing.Generator, roster []stores.Store, def Definition) Product {
	base := BasePrice(def.ID)
	return Product{
		ID:           def.ID,
		Name:         def.Name,
		Category:     def.Category,
		Brand:        def.Brand,
		Size:         def.Size,
		Image:        def.Image,
		Tags:         def.Tags,
		IsOrganic:    def.IsOrganic,
		Rating:       def.Rating,
		Stores:       gen.GenerateStorePrices(base, roster),
		PriceHistory: gen.GeneratePriceHistory(base, roster),
	}
}
