package pricing

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// generationDuration tracks how long synthetic generation takes per kind.
	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pricing_generation_duration_seconds",
		Help:    "Time taken to generate synthetic price data by kind",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1},
	}, []string{"kind"}) // kind: store_prices, history, refresh

	// promotionsGenerated counts sampled promotions by kind.
	promotionsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_promotions_generated_total",
		Help: "Total number of promotions attached to generated prices by kind",
	}, []string{"kind"})

	// pricesGenerated counts individual store prices produced.
	pricesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pricing_store_prices_generated_total",
		Help: "Total number of store price entries generated",
	})
)

func observeGeneration(kind string, start time.Time) {
	generationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
