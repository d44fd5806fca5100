package metrics

import "github.com/prometheus/client_golang/prometheus"

// Catalog Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalogd",
			Name:      "search_queries_total",
			Help:      "Total number of executed asset searches",
		},
	)

	AssetsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogd",
			Name:      "assets_created_total",
			Help:      "Total number of assets created",
		},
		[]string{"kind"},
	)

	EngagementEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalogd",
			Name:      "engagement_events_total",
			Help:      "Total share/favorite engagement events",
		},
		[]string{"event"}, // "shared" / "favorited" / "unfavorited"
	)
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers Prometheus catalog metrics. Must be called once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(AssetsCreatedTotal)
	prometheus.MustRegister(EngagementEventsTotal)
	catalogMetricsRegistered = true
}
