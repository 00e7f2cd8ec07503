package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from transport callbacks and must be thread-safe.
//
// The interface composes domain-focused sub-interfaces so transports only
// need the channel half.
type MetricsCollector interface {
	StoreMetrics
	ChannelMetrics
}

// StoreMetrics defines metrics for store mutations and derived views.
type StoreMetrics interface {
	// RecordPatchApplied records patches merged into existing entities,
	// grouped by the patched attribute key ("importance", "teams", ...).
	RecordPatchApplied(attribute string, count int)

	// RecordUnitUpserted records a patch that inserted a brand-new unit
	// (server-side regeneration path).
	RecordUnitUpserted()

	// RecordEchoSuppressed records an inbound envelope dropped because it
	// carried this session's own origin tag.
	RecordEchoSuppressed()

	// RecordSortRecompute records a display sort recomputation.
	//
	// Parameters:
	//   - key: The active sort key
	//   - seconds: Time taken in seconds
	RecordSortRecompute(key SortKey, seconds float64)

	// RecordUnitCount sets the current working-set size (gauge metric).
	RecordUnitCount(count int)

	// RecordBroadcast records a broadcast outcome ("success", "failure").
	RecordBroadcast(result string)

	// RecordRemoteMessage records a server-pushed message by type
	// ("success", "warning", "danger", ...).
	RecordRemoteMessage(kind string)
}

// ChannelMetrics defines metrics for broadcast transports.
type ChannelMetrics interface {
	// RecordEnvelopeSent records a published envelope and its encoded size.
	RecordEnvelopeSent(bytes int)

	// RecordEnvelopeReceived records a delivered envelope and its encoded
	// size.
	RecordEnvelopeReceived(bytes int)

	// RecordDecodeError records an inbound payload that failed to decode.
	RecordDecodeError()

	// RecordSubscribeRetry records a subscription attempt that had to be
	// retried.
	RecordSubscribeRetry(attempt int)
}
