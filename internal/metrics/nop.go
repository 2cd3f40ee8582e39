// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/mrterry/lunchr/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the engine default and the embedded
// fallback of PrometheusCollector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// DecisionMetrics implementation

// RecordDecision discards the decision metric.
func (n *NopMetrics) RecordDecision(_ /* kind */ string, _ /* improved */ bool, _ /* duration */ float64) {
	// No-op
}

// RecordMove discards the move metric.
func (n *NopMetrics) RecordMove(_ /* table */ types.TableID) {
	// No-op
}

// RecordEviction discards the eviction metric.
func (n *NopMetrics) RecordEviction(_ /* table */ types.TableID) {
	// No-op
}

// SetOccupancy discards the occupancy gauge.
func (n *NopMetrics) SetOccupancy(_ /* table */ types.TableID, _ /* count */ int) {
	// No-op
}

// RoundMetrics implementation

// RecordRound discards the round metric.
func (n *NopMetrics) RecordRound(_ /* evaluated */, _ /* moves */ int, _ /* duration */ float64) {
	// No-op
}

// RecordSettle discards the settle metric.
func (n *NopMetrics) RecordSettle(_ /* reason */ string, _ /* rounds */ int) {
	// No-op
}
