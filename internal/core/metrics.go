package core

import "time"

// Recorder defines the interface for recording application metrics.
// Implementations include Metrics (Prometheus-based) and NoopMetrics (no-op).
type Recorder interface {
	// Token Operations
	RecordTokenIssued(success bool, duration time.Duration)
	RecordTokensListed(success bool, returned int)

	// API key check outcomes: "missing", "invalid", "not_configured"
	RecordAPIKeyRejected(reason string)

	// Gauge Setters (for periodic updates)
	SetActiveTokensCount(count int)

	// Database Operations
	RecordDatabaseQueryError(operation string)
}
