package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/pricing"
)

func TestEvaluateAlerts(t *testing.T) {
	milk := catalog.Product{
		ID:   "milk-semi-2l",
		Name: "Semi-Skimmed Milk",
		Stores: []pricing.StorePrice{
			{StoreID: "tesco", Price: 125, Availability: pricing.InStock},
			{StoreID: "lidl", Price: 95, Availability: pricing.InStock},
			{StoreID: "aldi", Price: 80, Availability: pricing.OutOfStock},
		},
	}

	base := NewState()
	base.Products = []catalog.Product{milk}

	t.Run("fires on cheapest in-stock price at or below target", func(t *testing.T) {
		st := base
		st.PriceAlerts = []PriceAlert{{ID: "a1", ProductID: "milk-semi-2l", TargetPrice: 100, IsActive: true}}

		got := EvaluateAlerts(st)
		require.Len(t, got, 1)
		assert.Equal(t, "a1", got[0].Alert.ID)
		assert.Equal(t, "lidl", got[0].StorePrice.StoreID)
	})

	t.Run("out-of-stock prices never trigger", func(t *testing.T) {
		st := base
		st.PriceAlerts = []PriceAlert{{ID: "a1", ProductID: "milk-semi-2l", TargetPrice: 85, IsActive: true}}
		assert.Empty(t, EvaluateAlerts(st), "aldi is cheaper than target but out of stock")
	})

	t.Run("store scope honoured", func(t *testing.T) {
		st := base
		st.PriceAlerts = []PriceAlert{
			{ID: "a1", ProductID: "milk-semi-2l", TargetPrice: 100, StoreID: "tesco", IsActive: true},
			{ID: "a2", ProductID: "milk-semi-2l", TargetPrice: 130, StoreID: "tesco", IsActive: true},
		}

		got := EvaluateAlerts(st)
		require.Len(t, got, 1)
		assert.Equal(t, "a2", got[0].Alert.ID)
		assert.Equal(t, "tesco", got[0].StorePrice.StoreID)
	})

	t.Run("inactive alerts skipped", func(t *testing.T) {
		st := base
		st.PriceAlerts = []PriceAlert{{ID: "a1", ProductID: "milk-semi-2l", TargetPrice: 100, IsActive: false}}
		assert.Empty(t, EvaluateAlerts(st))
	})

	t.Run("unknown product never fires", func(t *testing.T) {
		st := base
		st.PriceAlerts = []PriceAlert{{ID: "a1", ProductID: "gone", TargetPrice: 10000, IsActive: true}}
		assert.Empty(t, EvaluateAlerts(st))
	})

	t.Run("one hit per alert", func(t *testing.T) {
		st := base
		st.PriceAlerts = []PriceAlert{{ID: "a1", ProductID: "milk-semi-2l", TargetPrice: 200, IsActive: true}}
		assert.Len(t, EvaluateAlerts(st), 1, "both stores satisfy the target but the alert fires once")
	})
}
