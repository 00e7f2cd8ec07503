package metrics

import (
	"testing"

	"github.com/TabbycatDebate/tabbycat/types"
)

func TestNopMetrics(t *testing.T) {
	m := NewNop()

	// Every method must be callable without side effects.
	m.RecordPatchApplied("importance", 3)
	m.RecordUnitUpserted()
	m.RecordEchoSuppressed()
	m.RecordSortRecompute(types.SortBracket, 0.001)
	m.RecordUnitCount(10)
	m.RecordBroadcast("success")
	m.RecordRemoteMessage("danger")
	m.RecordEnvelopeSent(128)
	m.RecordEnvelopeReceived(128)
	m.RecordDecodeError()
	m.RecordSubscribeRetry(1)
}
