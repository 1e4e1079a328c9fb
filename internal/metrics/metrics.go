package metrics

import (
	"sync"
	"time"

	"github.com/go-authgate/tokengate/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is an alias for core.Recorder so callers can import it from here.
type Recorder = core.Recorder

// Ensure Metrics implements Recorder interface at compile time
var _ Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Token Metrics
	TokensIssuedTotal     *prometheus.CounterVec
	TokenIssueDuration    prometheus.Histogram
	TokenListRequestTotal *prometheus.CounterVec
	TokensListedPerQuery  prometheus.Histogram
	TokensActive          prometheus.Gauge

	// API key authentication
	APIKeyRejectedTotal *prometheus.CounterVec

	// HTTP Request Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database Query Metrics
	DatabaseQueryErrorsTotal *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init initializes metrics based on enabled flag
// If enabled=true, returns Prometheus-based Metrics
// If enabled=false, returns NoopMetrics (zero overhead)
// Uses sync.Once to ensure Prometheus metrics are only registered once
func Init(enabled bool) Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

func initMetrics() *Metrics {
	return &Metrics{
		TokensIssuedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokens_issued_total",
				Help: "Total number of token issuance attempts",
			},
			[]string{"result"}, // success, error
		),
		TokenIssueDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "token_issue_duration_seconds",
				Help:    "Time taken to generate and persist a token",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		TokenListRequestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "token_list_requests_total",
				Help: "Total number of active token listings",
			},
			[]string{"result"}, // success, error
		),
		TokensListedPerQuery: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tokens_listed_per_query",
				Help:    "Number of active tokens returned by a listing",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		TokensActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tokens_active",
				Help: "Current number of unexpired tokens across all users",
			},
		),

		APIKeyRejectedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_key_rejected_total",
				Help: "Total number of requests rejected by the API key check",
			},
			[]string{"reason"}, // missing, invalid, not_configured
		),

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
		),

		DatabaseQueryErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "database_query_errors_total",
				Help: "Total number of failed database queries",
			},
			[]string{"operation"},
		),
	}
}

// RecordTokenIssued records an issuance attempt and, on success, how long it took
func (m *Metrics) RecordTokenIssued(success bool, duration time.Duration) {
	if !success {
		m.TokensIssuedTotal.WithLabelValues(resultError).Inc()
		return
	}
	m.TokensIssuedTotal.WithLabelValues(resultSuccess).Inc()
	m.TokenIssueDuration.Observe(duration.Seconds())
}

// RecordTokensListed records a listing and the size of its result
func (m *Metrics) RecordTokensListed(success bool, returned int) {
	if !success {
		m.TokenListRequestTotal.WithLabelValues(resultError).Inc()
		return
	}
	m.TokenListRequestTotal.WithLabelValues(resultSuccess).Inc()
	m.TokensListedPerQuery.Observe(float64(returned))
}

// RecordAPIKeyRejected records a request refused by the API key check
func (m *Metrics) RecordAPIKeyRejected(reason string) {
	m.APIKeyRejectedTotal.WithLabelValues(reason).Inc()
}

// SetActiveTokensCount sets the current count of active tokens (for periodic updates)
func (m *Metrics) SetActiveTokensCount(count int) {
	m.TokensActive.Set(float64(count))
}

// RecordDatabaseQueryError records a failed database query
func (m *Metrics) RecordDatabaseQueryError(operation string) {
	m.DatabaseQueryErrorsTotal.WithLabelValues(operation).Inc()
}
