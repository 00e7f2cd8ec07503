package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/TabbycatDebate/tabbycat/types"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "testns")

	m.RecordPatchApplied("importance", 2)
	m.RecordUnitUpserted()
	m.RecordEchoSuppressed()
	m.RecordEchoSuppressed()
	m.RecordSortRecompute(types.SortLiveness, 0.002)
	m.RecordUnitCount(7)
	m.RecordBroadcast("success")
	m.RecordRemoteMessage("danger")
	m.RecordEnvelopeSent(256)
	m.RecordEnvelopeReceived(512)
	m.RecordDecodeError()
	m.RecordSubscribeRetry(2)

	require.Equal(t, 2.0, testutil.ToFloat64(m.patchesApplied.WithLabelValues("importance")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.unitsUpserted))
	require.Equal(t, 2.0, testutil.ToFloat64(m.echoesSuppressed))
	require.Equal(t, 7.0, testutil.ToFloat64(m.unitsCurrent))
	require.Equal(t, 1.0, testutil.ToFloat64(m.broadcasts.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.remoteMessages.WithLabelValues("danger")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.envelopesSent))
	require.Equal(t, 1.0, testutil.ToFloat64(m.envelopesReceived))
	require.Equal(t, 1.0, testutil.ToFloat64(m.decodeErrors))
	require.Equal(t, 1.0, testutil.ToFloat64(m.subscribeRetries))
}

func TestPrometheusCollector_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	// Two collectors on one registry must not panic on duplicate
	// registration.
	a := NewPrometheus(reg, "shared")
	b := NewPrometheus(reg, "shared")
	a.RecordUnitUpserted()
	b.RecordUnitUpserted()
}
