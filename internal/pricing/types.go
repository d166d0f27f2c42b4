// Package pricing generates synthetic per-store prices, promotions, and
// trailing price history for catalog products. All money values are int64
// minor units (pence) to avoid floating-point rounding error.
package pricing

import "time"

// Availability is the stock state of a product at a store.
type Availability string

const (
	InStock    Availability = "in-stock"
	LowStock   Availability = "low-stock"
	OutOfStock Availability = "out-of-stock"
)

// PromotionKind identifies the promotion mechanic.
type PromotionKind string

const (
	PromotionPercentage PromotionKind = "percentage"
	PromotionFixed      PromotionKind = "fixed"
	PromotionBOGO       PromotionKind = "buy-one-get-one"
)

// Promotion is an active offer on a store price.
//
// A percentage promotion's discount is round(price * value / 100); a fixed
// promotion's discount is its value in pence. BOGO offers never alter the
// stored current price, they only annotate expected savings.
type Promotion struct {
	Kind        PromotionKind `json:"kind"`
	Value       float64       `json:"value"`
	Description string        `json:"description"`
	ValidUntil  time.Time     `json:"validUntil"`
}

// StorePrice is the current price of a product at a single store.
type StorePrice struct {
	StoreID           string       `json:"storeId"`
	StoreName         string       `json:"storeName"`
	Price             int64        `json:"price"`
	OriginalPrice     *int64       `json:"originalPrice,omitempty"`
	Discount          *int64       `json:"discount,omitempty"`
	Availability      Availability `json:"availability"`
	DeliveryAvailable bool         `json:"deliveryAvailable"`
	LastUpdated       time.Time    `json:"lastUpdated"`
	Promotion         *Promotion   `json:"promotion,omitempty"`
}

// PriceHistoryEntry is one observed price for a (date, store) pair.
type PriceHistoryEntry struct {
	Date    time.Time `json:"date"`
	StoreID string    `json:"storeId"`
	Price   int64     `json:"price"`
}
