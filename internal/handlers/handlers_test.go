package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trolleywise/price-service/internal/appstate"
	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/persistence"
	"github.com/trolleywise/price-service/internal/pricing"
)

type memPersister struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{docs: map[string][]byte{}}
}

func (m *memPersister) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, persistence.ErrNotFound
	}
	return doc, nil
}

func (m *memPersister) Save(_ context.Context, key string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = doc
	return nil
}

func (m *memPersister) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, key)
	return nil
}

func (m *memPersister) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[key]
	return ok, nil
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:       "milk-semi-2l",
			Name:     "Semi-Skimmed Milk",
			Category: catalog.CategoryDairy,
			Tags:     []string{"dairy"},
			Rating:   4.5,
			Stores: []pricing.StorePrice{
				{StoreID: "tesco", StoreName: "Tesco", Price: 125, Availability: pricing.InStock},
				{StoreID: "lidl", StoreName: "Lidl", Price: 95, Availability: pricing.InStock},
			},
			PriceHistory: []pricing.PriceHistoryEntry{
				{StoreID: "tesco", Price: 120},
				{StoreID: "lidl", Price: 98},
			},
		},
		{
			ID:       "bread-white-800g",
			Name:     "White Bread",
			Category: catalog.CategoryBakery,
			Tags:     []string{"bakery"},
			Rating:   4.0,
			Stores: []pricing.StorePrice{
				{StoreID: "tesco", StoreName: "Tesco", Price: 110, Availability: pricing.OutOfStock},
			},
		},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *appstate.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := appstate.NewStore(newMemPersister(), zerolog.Nop())
	require.NoError(t, store.Bootstrap(context.Background(), testProducts()))

	router := gin.New()
	New(store, zerolog.Nop()).Register(router.Group("/api/v1"))
	return router, store
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestListStores(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/stores", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stores []struct {
			ID string `json:"id"`
		} `json:"stores"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Stores, 6)
	assert.Equal(t, "tesco", resp.Stores[0].ID)
}

func TestGetStoreNotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(router, http.MethodGet, "/api/v1/stores/waitrose", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("query filter", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/products?query=milk", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Products []ProductSummary `json:"products"`
			Total    int              `json:"total"`
		}
		decode(t, w, &resp)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "milk-semi-2l", resp.Products[0].ID)
		assert.Equal(t, "lidl", resp.Products[0].CheapestStore)
		assert.Equal(t, int64(95), resp.Products[0].CheapestPrice)
		assert.Equal(t, int64(30), resp.Products[0].TotalSavings)
	})

	t.Run("availability filter excludes out of stock", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/products?availability=in-stock", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total int `json:"total"`
		}
		decode(t, w, &resp)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("negative price bound rejected", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/v1/products?minPrice=-5", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/products/milk-semi-2l", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ProductSummary
	decode(t, w, &resp)
	assert.Equal(t, "milk-semi-2l", resp.ID)
	assert.Empty(t, resp.PriceHistory, "history belongs to the history endpoint")

	w = do(router, http.MethodGet, "/api/v1/products/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPriceHistoryStoreFilter(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/products/milk-semi-2l/history?store=lidl", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ProductID string `json:"productId"`
		History   []struct {
			StoreID string `json:"storeId"`
		} `json:"history"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "milk-semi-2l", resp.ProductID)
	require.Len(t, resp.History, 1)
	assert.Equal(t, "lidl", resp.History[0].StoreID)
}

func TestShoppingListLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lists", `{"name":"BBQ"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created appstate.ShoppingList
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "BBQ", created.Name)

	w = do(router, http.MethodPut, "/api/v1/lists/"+created.ID, `{"name":"Summer BBQ"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/lists/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched appstate.ShoppingList
	decode(t, w, &fetched)
	assert.Equal(t, "Summer BBQ", fetched.Name)

	w = do(router, http.MethodDelete, "/api/v1/lists/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodGet, "/api/v1/lists/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateShoppingListDefaultsName(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lists", `{}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created appstate.ShoppingList
	decode(t, w, &created)
	assert.Equal(t, appstate.DefaultListName, created.Name)
}

func TestAddListItemToDefaultList(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lists/default/items", `{"productId":"milk-semi-2l"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var list appstate.ShoppingList
	decode(t, w, &list)
	assert.Equal(t, appstate.DefaultListName, list.Name)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].Quantity)

	// Adding the same product again increments, not duplicates.
	w = do(router, http.MethodPost, "/api/v1/lists/default/items", `{"productId":"milk-semi-2l"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 2, list.Items[0].Quantity)
}

func TestAddListItemValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/lists/default/items", `{"productId":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/api/v1/lists/nope/items", `{"productId":"milk-semi-2l"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/api/v1/lists/default/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveListItem(t *testing.T) {
	router, store := newTestRouter(t)
	store.AddToDefaultList(appstate.ShoppingListItem{ProductID: "milk-semi-2l", Quantity: 1})

	w := do(router, http.MethodDelete, "/api/v1/lists/default-list/items/milk-semi-2l", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list appstate.ShoppingList
	decode(t, w, &list)
	assert.Empty(t, list.Items)
}

func TestAlertLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/alerts", `{"productId":"milk-semi-2l","targetPrice":100}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created appstate.PriceAlert
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	// Lidl sells at 95, under the 100 target.
	w = do(router, http.MethodGet, "/api/v1/alerts/triggered", "")
	require.Equal(t, http.StatusOK, w.Code)
	var triggered struct {
		Triggered []appstate.TriggeredAlert `json:"triggered"`
	}
	decode(t, w, &triggered)
	require.Len(t, triggered.Triggered, 1)
	assert.Equal(t, "lidl", triggered.Triggered[0].StorePrice.StoreID)

	w = do(router, http.MethodDelete, "/api/v1/alerts/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodDelete, "/api/v1/alerts/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAlertValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/alerts", `{"productId":"nope","targetPrice":100}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/api/v1/alerts", `{"productId":"milk-semi-2l","targetPrice":100,"storeId":"waitrose"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/alerts", `{"productId":"milk-semi-2l"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettings(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, w.Code)

	var settings appstate.AppSettings
	decode(t, w, &settings)
	assert.Equal(t, appstate.ThemeSystem, settings.Theme)
	assert.Equal(t, "GBP", settings.Currency)
	assert.True(t, settings.Notifications)

	t.Run("partial patch merges", func(t *testing.T) {
		w := do(router, http.MethodPatch, "/api/v1/settings", `{"theme":"dark"}`)
		require.Equal(t, http.StatusOK, w.Code)

		decode(t, w, &settings)
		assert.Equal(t, appstate.ThemeDark, settings.Theme)
		assert.Equal(t, "GBP", settings.Currency, "untouched fields survive")
		assert.True(t, settings.Notifications)
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		w := do(router, http.MethodPatch, "/api/v1/settings", `{"theme":"sepia"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("currency is fixed", func(t *testing.T) {
		w := do(router, http.MethodPatch, "/api/v1/settings", `{"currency":"EUR"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown default store rejected", func(t *testing.T) {
		w := do(router, http.MethodPatch, "/api/v1/settings", `{"defaultStore":"waitrose"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
