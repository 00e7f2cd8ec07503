// Package metrics provides MetricsCollector implementations used by the
// Store and the channel transports.
package metrics

import "github.com/TabbycatDebate/tabbycat/types"

// NopMetrics is a no-op metrics collector used as the default when no
// collector is injected.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: Collector that records nothing
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPatchApplied discards the observation.
func (n *NopMetrics) RecordPatchApplied(_ /* attribute */ string, _ /* count */ int) {}

// RecordUnitUpserted discards the observation.
func (n *NopMetrics) RecordUnitUpserted() {}

// RecordEchoSuppressed discards the observation.
func (n *NopMetrics) RecordEchoSuppressed() {}

// RecordSortRecompute discards the observation.
func (n *NopMetrics) RecordSortRecompute(_ /* key */ types.SortKey, _ /* seconds */ float64) {}

// RecordUnitCount discards the observation.
func (n *NopMetrics) RecordUnitCount(_ /* count */ int) {}

// RecordBroadcast discards the observation.
func (n *NopMetrics) RecordBroadcast(_ /* result */ string) {}

// RecordRemoteMessage discards the observation.
func (n *NopMetrics) RecordRemoteMessage(_ /* kind */ string) {}

// RecordEnvelopeSent discards the observation.
func (n *NopMetrics) RecordEnvelopeSent(_ /* bytes */ int) {}

// RecordEnvelopeReceived discards the observation.
func (n *NopMetrics) RecordEnvelopeReceived(_ /* bytes */ int) {}

// RecordDecodeError discards the observation.
func (n *NopMetrics) RecordDecodeError() {}

// RecordSubscribeRetry discards the observation.
func (n *NopMetrics) RecordSubscribeRetry(_ /* attempt */ int) {}
