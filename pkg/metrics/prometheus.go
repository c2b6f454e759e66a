// Package metrics provides Prometheus metrics for the PitchPilot service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	// Analysis pipeline metrics.
	analysesRun   *prometheus.CounterVec
	eventsScored  prometheus.Counter
	momentsKept   *prometheus.CounterVec
	analysisTime  prometheus.Histogram
	eventsPerPass prometheus.Gauge

	// Oracle metrics.
	oraclePredictions *prometheus.CounterVec
	oracleFallbacks   *prometheus.CounterVec

	// Match data metrics.
	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
	fetchLatency prometheus.Histogram

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "pitchpilot",
		subsystem: "engine",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.analysesRun = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analyses_total",
		Help:      "Number of analysis passes run, by kind (player|match|advanced).",
	}, []string{"kind"})

	m.eventsScored = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_scored_total",
		Help:      "Number of events run through the scorer.",
	})

	m.momentsKept = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "moments_kept_total",
		Help:      "Number of moments that cleared a reporting threshold.",
	}, []string{"kind"})

	m.analysisTime = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_duration_seconds",
		Help:      "Duration of a full analysis pass.",
		Buckets:   m.buckets,
	})

	m.eventsPerPass = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_per_pass",
		Help:      "Number of events in the most recent analysis pass.",
	})

	m.oraclePredictions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "oracle_predictions_total",
		Help:      "Successful oracle predictions, by oracle (pass|shot|win).",
	}, []string{"oracle"})

	m.oracleFallbacks = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "oracle_fallbacks_total",
		Help:      "Predictions degraded to the heuristic path, by oracle.",
	}, []string{"oracle"})

	m.cacheHits = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_cache_hits_total",
		Help:      "Match data cache hits, by backend (disk|redis).",
	}, []string{"backend"})

	m.cacheMisses = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_cache_misses_total",
		Help:      "Match data cache misses, by backend (disk|redis).",
	}, []string{"backend"})

	m.fetchLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_seconds",
		Help:      "Duration of upstream match data fetches.",
		Buckets:   m.buckets,
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests, by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration, by endpoint and method.",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method"})
}

// GetRegistry returns the registry the global manager registers into.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording into the global manager.

// RecordAnalysis counts one analysis pass of the given kind.
func RecordAnalysis(kind string) {
	globalManager.analysesRun.WithLabelValues(kind).Inc()
}

// RecordEventsScored counts events run through the scorer.
func RecordEventsScored(n int) {
	globalManager.eventsScored.Add(float64(n))
}

// RecordMomentKept counts a moment that cleared a threshold.
func RecordMomentKept(kind string) {
	globalManager.momentsKept.WithLabelValues(kind).Inc()
}

// ObserveAnalysisDuration records the duration of a full analysis pass.
func ObserveAnalysisDuration(seconds float64) {
	globalManager.analysisTime.Observe(seconds)
}

// UpdateEventsPerPass records the event count of the latest pass.
func UpdateEventsPerPass(n int) {
	globalManager.eventsPerPass.Set(float64(n))
}

// RecordOraclePrediction counts a successful oracle prediction.
func RecordOraclePrediction(oracle string) {
	globalManager.oraclePredictions.WithLabelValues(oracle).Inc()
}

// RecordOracleFallback counts a prediction degraded to the heuristic path.
func RecordOracleFallback(oracle string) {
	globalManager.oracleFallbacks.WithLabelValues(oracle).Inc()
}

// RecordCacheHit counts a match cache hit for the given backend.
func RecordCacheHit(backend string) {
	globalManager.cacheHits.WithLabelValues(backend).Inc()
}

// RecordCacheMiss counts a match cache miss for the given backend.
func RecordCacheMiss(backend string) {
	globalManager.cacheMisses.WithLabelValues(backend).Inc()
}

// ObserveFetchDuration records the duration of an upstream fetch.
func ObserveFetchDuration(seconds float64) {
	globalManager.fetchLatency.Observe(seconds)
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// ObserveHTTPRequestDuration records the duration of one HTTP request.
func ObserveHTTPRequestDuration(endpoint, method string, seconds float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}
