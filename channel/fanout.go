package channel

import (
	"encoding/json"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/TabbycatDebate/tabbycat/types"
)

// fanout delivers decoded envelopes to every registered receiver. Receiver
// registration is lock-free so transports can dispatch from their receive
// callbacks without coordinating with OnReceive callers.
type fanout struct {
	receivers *xsync.Map[uint64, types.ReceiveFunc]
	nextID    atomic.Uint64

	logger  types.Logger
	metrics types.MetricsCollector
}

func newFanout(log types.Logger, m types.MetricsCollector) *fanout {
	return &fanout{
		receivers: xsync.NewMap[uint64, types.ReceiveFunc](),
		logger:    log,
		metrics:   m,
	}
}

// add registers a receiver and returns its registration id.
func (f *fanout) add(fn types.ReceiveFunc) uint64 {
	id := f.nextID.Add(1)
	f.receivers.Store(id, fn)

	return id
}

// remove drops a previously registered receiver.
func (f *fanout) remove(id uint64) {
	f.receivers.Delete(id)
}

// dispatch decodes a raw payload and delivers it to every receiver.
// Undecodable payloads are counted and dropped; a transport must never
// crash an editing session over a malformed message.
func (f *fanout) dispatch(data []byte) {
	env := &types.Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		f.metrics.RecordDecodeError()
		f.logger.Warn("dropping undecodable envelope", "error", err, "bytes", len(data))

		return
	}
	f.metrics.RecordEnvelopeReceived(len(data))

	f.receivers.Range(func(_ uint64, fn types.ReceiveFunc) bool {
		fn(env)

		return true
	})
}
