package appstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trolleywise/price-service/internal/catalog"
)

var testNow = time.Date(2024, 9, 15, 12, 0, 0, 0, time.UTC)

func seededState() State {
	s := NewState()
	s.Products = []catalog.Product{
		{ID: "milk-semi-2l", Name: "Semi-Skimmed Milk"},
		{ID: "bread-white-800g", Name: "White Bread"},
	}
	s.ShoppingLists = []ShoppingList{
		{
			ID:   "weekly",
			Name: "Weekly Shop",
			Items: []ShoppingListItem{
				{ProductID: "milk-semi-2l", Quantity: 1, PreferredStore: "lidl"},
			},
			CreatedAt: testNow.Add(-24 * time.Hour),
			UpdatedAt: testNow.Add(-24 * time.Hour),
		},
	}
	s.PriceAlerts = []PriceAlert{
		{ID: "alert-1", ProductID: "milk-semi-2l", TargetPrice: 100, IsActive: true},
	}
	return s
}

func TestReduceSetters(t *testing.T) {
	s := NewState()

	s = Reduce(s, SetLoading{Loading: true}, testNow)
	assert.True(t, s.IsLoading)

	s = Reduce(s, SetSearchQuery{Query: "milk"}, testNow)
	assert.Equal(t, "milk", s.SearchQuery)

	filters := catalog.SearchFilters{Category: catalog.CategoryDairy, SortBy: catalog.SortPriceAsc}
	s = Reduce(s, SetSearchFilters{Filters: filters}, testNow)
	assert.Equal(t, filters, s.SearchFilters)

	// Filters are replaced wholesale, not merged.
	s = Reduce(s, SetSearchFilters{Filters: catalog.SearchFilters{SortBy: catalog.SortName}}, testNow)
	assert.Empty(t, s.SearchFilters.Category)
	assert.Equal(t, catalog.SortName, s.SearchFilters.SortBy)

	p := catalog.Product{ID: "milk-semi-2l"}
	s = Reduce(s, SetSelectedProduct{Product: &p}, testNow)
	require.NotNil(t, s.SelectedProduct)
	assert.Equal(t, "milk-semi-2l", s.SelectedProduct.ID)

	s = Reduce(s, SetSelectedProduct{Product: nil}, testNow)
	assert.Nil(t, s.SelectedProduct)

	products := []catalog.Product{{ID: "a"}, {ID: "b"}}
	s = Reduce(s, SetProducts{Products: products}, testNow)
	assert.Len(t, s.Products, 2)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := seededState()
	input := seededState()

	_ = Reduce(input, AddToShoppingList{
		ListID: "weekly",
		Item:   ShoppingListItem{ProductID: "bread-white-800g", Quantity: 1},
	}, testNow)
	_ = Reduce(input, DeleteShoppingList{ListID: "weekly"}, testNow)
	_ = Reduce(input, RemovePriceAlert{AlertID: "alert-1"}, testNow)
	_ = Reduce(input, UpdateSettings{Patch: SettingsPatch{Theme: themePtr(ThemeDark)}}, testNow)

	assert.Equal(t, before, input)
}

func TestReduceShoppingLists(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		s := Reduce(seededState(), AddShoppingList{List: ShoppingList{ID: "bbq", Name: "BBQ"}}, testNow)
		require.Len(t, s.ShoppingLists, 2)
		assert.Equal(t, "bbq", s.ShoppingLists[1].ID)
	})

	t.Run("update replaces matching list", func(t *testing.T) {
		renamed := ShoppingList{ID: "weekly", Name: "Big Shop"}
		s := Reduce(seededState(), UpdateShoppingList{List: renamed}, testNow)
		require.Len(t, s.ShoppingLists, 1)
		assert.Equal(t, "Big Shop", s.ShoppingLists[0].Name)
	})

	t.Run("update unknown id is a no-op", func(t *testing.T) {
		before := seededState()
		s := Reduce(before, UpdateShoppingList{List: ShoppingList{ID: "nope", Name: "X"}}, testNow)
		assert.Equal(t, before.ShoppingLists, s.ShoppingLists)
	})

	t.Run("delete", func(t *testing.T) {
		s := Reduce(seededState(), DeleteShoppingList{ListID: "weekly"}, testNow)
		assert.Empty(t, s.ShoppingLists)
	})

	t.Run("delete unknown id is a no-op", func(t *testing.T) {
		s := Reduce(seededState(), DeleteShoppingList{ListID: "nope"}, testNow)
		assert.Len(t, s.ShoppingLists, 1)
	})
}

func TestReduceAddToShoppingList(t *testing.T) {
	t.Run("new product appends a line", func(t *testing.T) {
		s := Reduce(seededState(), AddToShoppingList{
			ListID: "weekly",
			Item:   ShoppingListItem{ProductID: "bread-white-800g", Quantity: 1},
		}, testNow)

		list, ok := s.FindList("weekly")
		require.True(t, ok)
		require.Len(t, list.Items, 2)
		assert.Equal(t, testNow, list.UpdatedAt)
	})

	t.Run("existing product increments quantity", func(t *testing.T) {
		s := seededState()
		item := ShoppingListItem{ProductID: "milk-semi-2l", Quantity: 1, PreferredStore: "tesco"}
		s = Reduce(s, AddToShoppingList{ListID: "weekly", Item: item}, testNow)

		list, _ := s.FindList("weekly")
		require.Len(t, list.Items, 1, "re-adding a product must not duplicate the line")
		assert.Equal(t, 2, list.Items[0].Quantity)
		assert.Equal(t, "lidl", list.Items[0].PreferredStore, "existing preference wins")
	})

	t.Run("twice from empty ends at quantity two", func(t *testing.T) {
		s := NewState()
		s = Reduce(s, AddShoppingList{List: ShoppingList{ID: "l1", Name: "List"}}, testNow)
		item := ShoppingListItem{ProductID: "milk-semi-2l", Quantity: 1}
		s = Reduce(s, AddToShoppingList{ListID: "l1", Item: item}, testNow)
		s = Reduce(s, AddToShoppingList{ListID: "l1", Item: item}, testNow)

		list, _ := s.FindList("l1")
		require.Len(t, list.Items, 1)
		assert.Equal(t, 2, list.Items[0].Quantity)
	})

	t.Run("unknown list is a no-op", func(t *testing.T) {
		before := seededState()
		s := Reduce(before, AddToShoppingList{
			ListID: "nope",
			Item:   ShoppingListItem{ProductID: "milk-semi-2l", Quantity: 1},
		}, testNow)
		assert.Equal(t, before.ShoppingLists, s.ShoppingLists)
	})
}

func TestReduceRemoveFromShoppingList(t *testing.T) {
	s := Reduce(seededState(), RemoveFromShoppingList{ListID: "weekly", ProductID: "milk-semi-2l"}, testNow)
	list, _ := s.FindList("weekly")
	assert.Empty(t, list.Items)
	assert.Equal(t, testNow, list.UpdatedAt)

	// Removing a product not on the list leaves the items alone.
	s2 := Reduce(seededState(), RemoveFromShoppingList{ListID: "weekly", ProductID: "nope"}, testNow)
	list2, _ := s2.FindList("weekly")
	assert.Len(t, list2.Items, 1)
}

func TestReducePriceAlerts(t *testing.T) {
	s := Reduce(seededState(), AddPriceAlert{Alert: PriceAlert{ID: "alert-2", ProductID: "bread-white-800g", TargetPrice: 80}}, testNow)
	require.Len(t, s.PriceAlerts, 2)

	s = Reduce(s, RemovePriceAlert{AlertID: "alert-1"}, testNow)
	require.Len(t, s.PriceAlerts, 1)
	assert.Equal(t, "alert-2", s.PriceAlerts[0].ID)

	s = Reduce(s, RemovePriceAlert{AlertID: "nope"}, testNow)
	assert.Len(t, s.PriceAlerts, 1)
}

func TestReduceUpdateSettingsMerges(t *testing.T) {
	s := NewState()
	require.Equal(t, ThemeSystem, s.Settings.Theme)
	require.Equal(t, "GBP", s.Settings.Currency)
	require.True(t, s.Settings.Notifications)

	off := false
	s = Reduce(s, UpdateSettings{Patch: SettingsPatch{Notifications: &off}}, testNow)

	assert.False(t, s.Settings.Notifications)
	assert.Equal(t, ThemeSystem, s.Settings.Theme, "untouched fields survive a partial patch")
	assert.Equal(t, "GBP", s.Settings.Currency)

	store := "aldi"
	postcode := "SW1A 1AA"
	s = Reduce(s, UpdateSettings{Patch: SettingsPatch{
		Theme:        themePtr(ThemeDark),
		DefaultStore: &store,
		Postcode:     &postcode,
	}}, testNow)

	assert.Equal(t, ThemeDark, s.Settings.Theme)
	assert.Equal(t, "aldi", s.Settings.DefaultStore)
	assert.Equal(t, "SW1A 1AA", s.Settings.Postcode)
	assert.False(t, s.Settings.Notifications)
}

func themePtr(th Theme) *Theme { return &th }
