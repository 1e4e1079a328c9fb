package metrics

import "time"

// NoopMetrics is a no-operation implementation of Recorder.
// All methods are empty, providing zero overhead when metrics are disabled.
type NoopMetrics struct{}

// Ensure NoopMetrics implements Recorder interface at compile time
var _ Recorder = (*NoopMetrics)(nil)

// NewNoopMetrics creates a new no-operation metrics recorder
func NewNoopMetrics() Recorder {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordTokenIssued(success bool, duration time.Duration) {}
func (n *NoopMetrics) RecordTokensListed(success bool, returned int)          {}
func (n *NoopMetrics) RecordAPIKeyRejected(reason string)                     {}
func (n *NoopMetrics) SetActiveTokensCount(count int)                         {}
func (n *NoopMetrics) RecordDatabaseQueryError(operation string)              {}
