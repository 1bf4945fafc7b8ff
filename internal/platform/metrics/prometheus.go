package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsManager holds the storefront's Prometheus collectors.
type MetricsManager struct {
	Registry             *prometheus.Registry
	CartMutationsTotal   *prometheus.CounterVec
	StorageFailuresTotal *prometheus.CounterVec
	CheckoutsTotal       *prometheus.CounterVec
	LoginsTotal          *prometheus.CounterVec
	HTTPRequestLatency   *prometheus.HistogramVec
}

func NewMetricsManager(namespace string) *MetricsManager {
	registry := prometheus.NewRegistry()

	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Committed cart mutations by type.",
	}, []string{"type"})
	storageFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "state_storage_failures_total",
		Help:      "State writes that fell back to memory only, by state kind.",
	}, []string{"state"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Checkout attempts by outcome.",
	}, []string{"result"})
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Login attempts by portal and outcome.",
	}, []string{"portal", "result"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of HTTP requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	registry.MustRegister(
		cartMutations,
		storageFailures,
		checkouts,
		logins,
		latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:             registry,
		CartMutationsTotal:   cartMutations,
		StorageFailuresTotal: storageFailures,
		CheckoutsTotal:       checkouts,
		LoginsTotal:          logins,
		HTTPRequestLatency:   latency,
	}
}

// RegisterVisitorGauge exposes the number of cached visitors, read from fn
// at scrape time.
func (m *MetricsManager) RegisterVisitorGauge(namespace string, fn func() float64) {
	m.Registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_visitors",
		Help:      "Visitors currently held in memory.",
	}, fn))
}

func (m *MetricsManager) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
