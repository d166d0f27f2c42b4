package pricing

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/trolleywise/price-service/internal/stores"
)

const (
	// MinPrice is the floor for any generated or discounted price, in pence.
	MinPrice = 10

	// HistoryDays is the trailing history window, inclusive of today.
	HistoryDays = 31
)

const (
	promotionChance   = 0.15
	percentageWeight  = 0.60 // of promotions
	fixedWeight       = 0.20
	inStockThreshold  = 0.90
	lowStockThreshold = 0.97
	deliveryChance    = 0.90
)

// Generator samples synthetic prices from an injected random source, so
// generation is reproducible in tests. The zero value is not usable;
// construct with NewGenerator or NewDefaultGenerator.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a Generator drawing from src. Pass a seeded source
// for deterministic output.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{
		rng: rand.New(src),
		now: time.Now,
	}
}

// NewDefaultGenerator returns a Generator seeded from the wall clock.
func NewDefaultGenerator() *Generator {
	return NewGenerator(rand.NewSource(time.Now().UnixNano()))
}

// WithClock overrides the generator's clock. Used by tests to pin
// LastUpdated and promotion expiry timestamps.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// priceVariation applies the store's tier modifier plus short-term and
// seasonal noise to a base price and rounds to the nearest penny.
func (g *Generator) priceVariation(basePrice float64, store stores.Store) int64 {
	random := 0.90 + g.rng.Float64()*0.20
	seasonal := 0.95 + g.rng.Float64()*0.10
	price := int64(math.Round(basePrice * store.Modifier * random * seasonal))
	if price < MinPrice {
		price = MinPrice
	}
	return price
}

// samplePromotion rolls for a promotion on the given price. Returns nil
// roughly 85% of the time.
func (g *Generator) samplePromotion(price int64) *Promotion {
	if g.rng.Float64() >= promotionChance {
		return nil
	}

	now := g.now()
	kind := g.rng.Float64()
	switch {
	case kind < percentageWeight:
		percent := 10 + g.rng.Float64()*30
		return &Promotion{
			Kind:        PromotionPercentage,
			Value:       percent,
			Description: fmt.Sprintf("%d%% off", int(math.Round(percent))),
			ValidUntil:  now.Add(7 * 24 * time.Hour),
		}
	case kind < percentageWeight+fixedWeight:
		amount := int64(math.Round(float64(price)*0.1 + g.rng.Float64()*float64(price)*0.2))
		return &Promotion{
			Kind:        PromotionFixed,
			Value:       float64(amount),
			Description: fmt.Sprintf("%s off", FormatPence(amount)),
			ValidUntil:  now.Add(5 * 24 * time.Hour),
		}
	default:
		return &Promotion{
			Kind:        PromotionBOGO,
			Value:       50,
			Description: "Buy One Get One 50% Off",
			ValidUntil:  now.Add(3 * 24 * time.Hour),
		}
	}
}

// GenerateStorePrices samples a current price for every store in the
// roster, in roster order. Base prices at or below zero are clamped to a
// penny rather than rejected; promotions never push a price below MinPrice.
func (g *Generator) GenerateStorePrices(basePrice int64, roster []stores.Store) []StorePrice {
	defer observeGeneration("store_prices", time.Now())
	if basePrice <= 0 {
		basePrice = 1
	}

	out := make([]StorePrice, 0, len(roster))
	for _, store := range roster {
		price := g.priceVariation(float64(basePrice), store)
		promo := g.samplePromotion(price)
		if promo != nil {
			promotionsGenerated.WithLabelValues(string(promo.Kind)).Inc()
		}
		pricesGenerated.Inc()

		sp := StorePrice{
			StoreID:           store.ID,
			StoreName:         store.Name,
			Price:             price,
			DeliveryAvailable: g.rng.Float64() < deliveryChance,
			LastUpdated:       g.now(),
			Promotion:         promo,
		}

		if promo != nil {
			original := price
			var discount int64
			switch promo.Kind {
			case PromotionPercentage:
				discount = int64(math.Round(float64(price) * promo.Value / 100))
				sp.Price = price - discount
				sp.OriginalPrice = &original
			case PromotionFixed:
				discount = int64(promo.Value)
				sp.Price = price - discount
				sp.OriginalPrice = &original
			case PromotionBOGO:
				// Annotation only: the shelf price is unchanged.
				discount = int64(math.Round(float64(price) * 0.25))
				sp.OriginalPrice = &original
			}
			if sp.Price < MinPrice {
				sp.Price = MinPrice
			}
			sp.Discount = &discount
		}

		roll := g.rng.Float64()
		switch {
		case roll < inStockThreshold:
			sp.Availability = InStock
		case roll < lowStockThreshold:
			sp.Availability = LowStock
		default:
			sp.Availability = OutOfStock
		}

		out = append(out, sp)
	}
	return out
}

// GeneratePriceHistory samples a price per store per day over the trailing
// HistoryDays window, oldest first. Output is sorted ascending by date with
// exactly one entry per (date, store) pair.
func (g *Generator) GeneratePriceHistory(basePrice int64, roster []stores.Store) []PriceHistoryEntry {
	defer observeGeneration("history", time.Now())
	if basePrice <= 0 {
		basePrice = 1
	}

	today := g.now()
	history := make([]PriceHistoryEntry, 0, HistoryDays*len(roster))

	for daysAgo := HistoryDays - 1; daysAgo >= 0; daysAgo-- {
		d := today.AddDate(0, 0, -daysAgo)
		date := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		for _, store := range roster {
			dayVariation := 0.95 + g.rng.Float64()*0.10
			trend := 1 + math.Sin(float64(daysAgo)/10)*0.05

			history = append(history, PriceHistoryEntry{
				Date:    date,
				StoreID: store.ID,
				Price:   g.priceVariation(float64(basePrice)*dayVariation*trend, store),
			})
		}
	}
	return history
}

// RefreshStorePrices applies a small random walk (up to ±5p) to each price,
// simulating intra-day movement. Promotions and availability are untouched;
// LastUpdated is restamped. The input slice is not modified.
func (g *Generator) RefreshStorePrices(prices []StorePrice) []StorePrice {
	defer observeGeneration("refresh", time.Now())
	now := g.now()
	out := make([]StorePrice, len(prices))
	for i, sp := range prices {
		next := sp
		next.Price = sp.Price + int64(math.Round((g.rng.Float64()-0.5)*10))
		if next.Price < MinPrice {
			next.Price = MinPrice
		}
		next.LastUpdated = now
		out[i] = next
	}
	return out
}
