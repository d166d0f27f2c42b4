package appstate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// actionsApplied counts reducer actions by type.
	actionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "appstate_actions_applied_total",
		Help: "Total number of state actions applied by type",
	}, []string{"action"})

	// noopActions counts actions that referenced a missing list or alert id.
	noopActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "appstate_noop_actions_total",
		Help: "Total number of actions that were no-ops due to missing ids",
	}, []string{"action"})

	// persistErrors counts failed persistence pushes by document key.
	persistErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "appstate_persist_errors_total",
		Help: "Total number of failed persistence writes by key",
	}, []string{"key"})

	// bootstrapDuration tracks how long the one-time bootstrap takes.
	bootstrapDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "appstate_bootstrap_duration_seconds",
		Help:    "Time taken to bootstrap the state store",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
	})

	// catalogSize reports the number of products in the seeded catalog.
	catalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "appstate_catalog_products",
		Help: "Number of products in the loaded catalog",
	})
)
