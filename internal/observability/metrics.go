package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the
// resolution-and-retrieval pipeline.
type Metrics struct {
	ResolveRequests  *prometheus.CounterVec // labels: status={good,invalid_search,not_found,not_in_region,shortcut}
	ForecastRequests *prometheus.CounterVec // labels: status={good,upstream_error}
	SuggestRequests  *prometheus.CounterVec // labels: outcome={success,error}

	CacheLookups *prometheus.CounterVec // labels: cache={geocode,forecast,suggest}, result={hit,miss}

	UpstreamDuration *prometheus.HistogramVec // labels: provider={geoapify,nws}, call={search,autocomplete,points,grid}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ResolveRequests,
		m.ForecastRequests,
		m.SuggestRequests,
		m.CacheLookups,
		m.UpstreamDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so
// parallel tests avoid "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ResolveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placecast",
			Name:      "resolve_requests_total",
			Help:      "Place-name resolutions by resulting status.",
		}, []string{"status"}),
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placecast",
			Name:      "forecast_requests_total",
			Help:      "Forecast retrievals by resulting status.",
		}, []string{"status"}),
		SuggestRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placecast",
			Name:      "suggest_requests_total",
			Help:      "Autocomplete lookups by outcome.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placecast",
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by cache and hit/miss.",
		}, []string{"cache", "result"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "placecast",
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider", "call"}),
	}
}
