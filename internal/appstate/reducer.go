package appstate

import (
	"fmt"
	"time"
)

// Reduce applies one action and returns the next state. It is pure: the
// input state and its nested collections are never mutated, only the
// affected branch is replaced. Actions referencing a missing list or alert
// id are tolerated as no-ops.
//
// The clock is threaded in so list UpdatedAt stamps are testable.
func Reduce(s State, a Action, now time.Time) State {
	switch act := a.(type) {
	case SetProducts:
		s.Products = act.Products
		return s

	case SetLoading:
		s.IsLoading = act.Loading
		return s

	case SetSearchQuery:
		s.SearchQuery = act.Query
		return s

	case SetSearchFilters:
		s.SearchFilters = act.Filters
		return s

	case SetSelectedProduct:
		s.SelectedProduct = act.Product
		return s

	case AddShoppingList:
		lists := make([]ShoppingList, 0, len(s.ShoppingLists)+1)
		lists = append(lists, s.ShoppingLists...)
		s.ShoppingLists = append(lists, act.List)
		return s

	case UpdateShoppingList:
		s.ShoppingLists = replaceList(s.ShoppingLists, act.List.ID, func(ShoppingList) ShoppingList {
			return act.List
		})
		return s

	case DeleteShoppingList:
		lists := make([]ShoppingList, 0, len(s.ShoppingLists))
		for _, l := range s.ShoppingLists {
			if l.ID != act.ListID {
				lists = append(lists, l)
			}
		}
		s.ShoppingLists = lists
		return s

	case AddToShoppingList:
		s.ShoppingLists = replaceList(s.ShoppingLists, act.ListID, func(l ShoppingList) ShoppingList {
			return addItem(l, act.Item, now)
		})
		return s

	case RemoveFromShoppingList:
		s.ShoppingLists = replaceList(s.ShoppingLists, act.ListID, func(l ShoppingList) ShoppingList {
			items := make([]ShoppingListItem, 0, len(l.Items))
			for _, it := range l.Items {
				if it.ProductID != act.ProductID {
					items = append(items, it)
				}
			}
			l.Items = items
			l.UpdatedAt = now
			return l
		})
		return s

	case AddPriceAlert:
		alerts := make([]PriceAlert, 0, len(s.PriceAlerts)+1)
		alerts = append(alerts, s.PriceAlerts...)
		s.PriceAlerts = append(alerts, act.Alert)
		return s

	case RemovePriceAlert:
		alerts := make([]PriceAlert, 0, len(s.PriceAlerts))
		for _, al := range s.PriceAlerts {
			if al.ID != act.AlertID {
				alerts = append(alerts, al)
			}
		}
		s.PriceAlerts = alerts
		return s

	case UpdateSettings:
		s.Settings = mergeSettings(s.Settings, act.Patch)
		return s

	default:
		// Action is sealed; reaching this means a new action type was added
		// without a reducer case.
		panic(fmt.Sprintf("appstate: unhandled action %T", a))
	}
}

// replaceList returns a new slice with the matching list passed through fn.
// When no list matches, the original slice is returned untouched.
func replaceList(lists []ShoppingList, listID string, fn func(ShoppingList) ShoppingList) []ShoppingList {
	found := false
	for _, l := range lists {
		if l.ID == listID {
			found = true
			break
		}
	}
	if !found {
		return lists
	}

	out := make([]ShoppingList, len(lists))
	for i, l := range lists {
		if l.ID == listID {
			out[i] = fn(l)
		} else {
			out[i] = l
		}
	}
	return out
}

// addItem increments the quantity when the product is already on the list
// (leaving its preferred store untouched), otherwise appends the new item.
func addItem(l ShoppingList, item ShoppingListItem, now time.Time) ShoppingList {
	items := make([]ShoppingListItem, len(l.Items))
	copy(items, l.Items)

	merged := false
	for i, existing := range items {
		if existing.ProductID == item.ProductID {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	l.Items = items
	l.UpdatedAt = now
	return l
}

func mergeSettings(s AppSettings, p SettingsPatch) AppSettings {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.DefaultStore != nil {
		s.DefaultStore = *p.DefaultStore
	}
	if p.Postcode != nil {
		s.Postcode = *p.Postcode
	}
	return s
}
