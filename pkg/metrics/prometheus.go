// Package metrics provides Prometheus metrics for the baedal API service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Auth chain outcomes
	authFailures *prometheus.CounterVec

	// Record stores
	recordsCreated *prometheus.CounterVec
	recordsDeleted *prometheus.CounterVec
	searches       *prometheus.CounterVec
	storeRecords   *prometheus.GaugeVec

	// Pagination
	pageLimit prometheus.Histogram
}

// Global metrics manager instance on a custom registry, keeping the
// default Go collectors out of the scrape output.
var globalManager *Manager                    //nolint:gochecknoglobals // singleton metrics manager
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // custom metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "baedal",
		subsystem:        "api",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	m.authFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "auth_failures_total",
		Help:      "Authentication chain failures by reason",
	}, []string{"reason"})

	m.recordsCreated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_created_total",
		Help:      "Records created by resource",
	}, []string{"resource"})

	m.recordsDeleted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_deleted_total",
		Help:      "Records deleted by resource",
	}, []string{"resource"})

	m.searches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "searches_total",
		Help:      "Search requests by resource",
	}, []string{"resource"})

	m.storeRecords = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_records",
		Help:      "Current number of records per store",
	}, []string{"resource"})

	m.pageLimit = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "page_limit",
		Help:      "Effective page limit after normalization",
		Buckets:   []float64{1, 5, 10, 25, 50, 100},
	})
}

// RecordHTTPRequest increments the request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// RecordAuthFailure counts an authentication chain failure by reason,
// e.g. "unauthenticated" or "forbidden".
func RecordAuthFailure(reason string) {
	globalManager.authFailures.WithLabelValues(reason).Inc()
}

// RecordRecordCreated counts a created record for a resource.
func RecordRecordCreated(resource string) {
	globalManager.recordsCreated.WithLabelValues(resource).Inc()
}

// RecordRecordDeleted counts a deleted record for a resource.
func RecordRecordDeleted(resource string) {
	globalManager.recordsDeleted.WithLabelValues(resource).Inc()
}

// RecordSearch counts a search request against a resource.
func RecordSearch(resource string) {
	globalManager.searches.WithLabelValues(resource).Inc()
}

// UpdateStoreRecords sets the current record count gauge for a store.
func UpdateStoreRecords(resource string, count int) {
	globalManager.storeRecords.WithLabelValues(resource).Set(float64(count))
}

// ObservePageLimit records the effective limit of a normalized window.
func ObservePageLimit(limit int) {
	globalManager.pageLimit.Observe(float64(limit))
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
