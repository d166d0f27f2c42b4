// Package appstate holds the application's root state and the reducer-style
// state machine that mutates it. All transitions flow through a closed set
// of actions; readers only ever see immutable snapshots.
package appstate

import (
	"time"

	"github.com/trolleywise/price-service/internal/catalog"
)

// Theme selects the UI appearance.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// AppSettings are the user's preferences. Currency is fixed to GBP.
type AppSettings struct {
	Theme         Theme  `json:"theme"`
	Currency      string `json:"currency"`
	Notifications bool   `json:"notifications"`
	DefaultStore  string `json:"defaultStore,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	Theme         *Theme  `json:"theme,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	DefaultStore  *string `json:"defaultStore,omitempty"`
	Postcode      *string `json:"postcode,omitempty"`
}

// ShoppingListItem is one product line on a shopping list.
type ShoppingListItem struct {
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	PreferredStore string `json:"preferredStore,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ShoppingList holds at most one item per product id; re-adding a product
// increments its quantity instead of duplicating the line.
type ShoppingList struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Items     []ShoppingListItem `json:"items"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// PriceAlert fires when a product drops to or below the target price,
// optionally scoped to a single store.
type PriceAlert struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	TargetPrice int64     `json:"targetPrice"`
	StoreID     string    `json:"storeId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// State is the root aggregate. It is a value type: the reducer returns new
// State values and never mutates its input.
type State struct {
	Products        []catalog.Product
	ShoppingLists   []ShoppingList
	PriceAlerts     []PriceAlert
	SearchFilters   catalog.SearchFilters
	Settings        AppSettings
	IsLoading       bool
	SearchQuery     string
	SelectedProduct *catalog.Product
}

// NewState returns the initial state with default settings.
func NewState() State {
	return State{
		Settings: AppSettings{
			Theme:         ThemeSystem,
			Currency:      "GBP",
			Notifications: true,
		},
	}
}

// FindList returns the shopping list with the given id, if present.
func (s State) FindList(listID string) (ShoppingList, bool) {
	for _, l := range s.ShoppingLists {
		if l.ID == listID {
			return l, true
		}
	}
	return ShoppingList{}, false
}

// FindListByName returns the first list with the given name, if present.
func (s State) FindListByName(name string) (ShoppingList, bool) {
	for _, l := range s.ShoppingLists {
		if l.Name == name {
			return l, true
		}
	}
	return ShoppingList{}, false
}

// FindProduct returns the catalog product with the given id, if present.
func (s State) FindProduct(productID string) (catalog.Product, bool) {
	for _, p := range s.Products {
		if p.ID == productID {
			return p, true
		}
	}
	return catalog.Product{}, false
}
