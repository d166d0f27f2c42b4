package appstate

import "github.com/trolleywise/price-service/internal/catalog"

// Action is the closed set of state transitions. The interface is sealed:
// only types in this package implement it, so the reducer's type switch is
// exhaustive over every possible action.
type Action interface {
	isAction()
}

// SetProducts replaces the product catalog wholesale.
type SetProducts struct {
	Products []catalog.Product
}

// SetLoading sets the loading flag.
type SetLoading struct {
	Loading bool
}

// SetSearchQuery replaces the free-text search query.
type SetSearchQuery struct {
	Query string
}

// SetSearchFilters replaces the filter set wholesale (not merged).
type SetSearchFilters struct {
	Filters catalog.SearchFilters
}

// SetSelectedProduct replaces the currently selected product (nil to clear).
type SetSelectedProduct struct {
	Product *catalog.Product
}

// AddShoppingList appends a new list. Uniqueness of the id is the caller's
// responsibility.
type AddShoppingList struct {
	List ShoppingList
}

// UpdateShoppingList replaces the list with the matching id in place.
type UpdateShoppingList struct {
	List ShoppingList
}

// DeleteShoppingList removes the list with the matching id.
type DeleteShoppingList struct {
	ListID string
}

// AddToShoppingList adds an item to a list, incrementing the quantity when
// the product is already on it.
type AddToShoppingList struct {
	ListID string
	Item   ShoppingListItem
}

// RemoveFromShoppingList removes the item with the matching product id.
type RemoveFromShoppingList struct {
	ListID    string
	ProductID string
}

// AddPriceAlert appends a price alert.
type AddPriceAlert struct {
	Alert PriceAlert
}

// RemovePriceAlert removes the alert with the matching id.
type RemovePriceAlert struct {
	AlertID string
}

// UpdateSettings shallow-merges a partial settings patch.
type UpdateSettings struct {
	Patch SettingsPatch
}

func (SetProducts) isAction()            {}
func (SetLoading) isAction()             {}
func (SetSearchQuery) isAction()         {}
func (SetSearchFilters) isAction()       {}
func (SetSelectedProduct) isAction()     {}
func (AddShoppingList) isAction()        {}
func (UpdateShoppingList) isAction()     {}
func (DeleteShoppingList) isAction()     {}
func (AddToShoppingList) isAction()      {}
func (RemoveFromShoppingList) isAction() {}
func (AddPriceAlert) isAction()          {}
func (RemovePriceAlert) isAction()       {}
func (UpdateSettings) isAction()         {}

// ActionName returns a stable label for metrics and logs.
func ActionName(a Action) string {
	switch a.(type) {
	case SetProducts:
		return "set_products"
	case SetLoading:
		return "set_loading"
	case SetSearchQuery:
		return "set_search_query"
	case SetSearchFilters:
		return "set_search_filters"
	case SetSelectedProduct:
		return "set_selected_product"
	case AddShoppingList:
		return "add_shopping_list"
	case UpdateShoppingList:
		return "update_shopping_list"
	case DeleteShoppingList:
		return "delete_shopping_list"
	case AddToShoppingList:
		return "add_to_shopping_list"
	case RemoveFromShoppingList:
		return "remove_from_shopping_list"
	case AddPriceAlert:
		return "add_price_alert"
	case RemovePriceAlert:
		return "remove_price_alert"
	case UpdateSettings:
		return "update_settings"
	default:
		return "unknown"
	}
}
