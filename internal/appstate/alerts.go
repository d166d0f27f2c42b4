package appstate

import (
	"github.com/trolleywise/price-service/internal/catalog"
	"github.com/trolleywise/price-service/internal/pricing"
)

// TriggeredAlert pairs a price alert with the store price satisfying it.
type TriggeredAlert struct {
	Alert      PriceAlert         `json:"alert"`
	Product    catalog.Product    `json:"product"`
	StorePrice pricing.StorePrice `json:"storePrice"`
}

// EvaluateAlerts returns every active alert whose target price is met by an
// in-stock store price, honouring the alert's store scope when set. Alerts
// for unknown products never fire.
func EvaluateAlerts(st State) []TriggeredAlert {
	var triggered []TriggeredAlert
	for _, alert := range st.PriceAlerts {
		if !alert.IsActive {
			continue
		}
		product, ok := st.FindProduct(alert.ProductID)
		if !ok {
			continue
		}
		for _, sp := range product.Stores {
			if alert.StoreID != "" && sp.StoreID != alert.StoreID {
				continue
			}
			if sp.Availability != pricing.InStock {
				continue
			}
			if sp.Price <= alert.TargetPrice {
				triggered = append(triggered, TriggeredAlert{
					Alert:      alert,
					Product:    product,
					StorePrice: sp,
				})
				break
			}
		}
	}
	return triggered
}
