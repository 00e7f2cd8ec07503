package channel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	tabtest "github.com/TabbycatDebate/tabbycat/testing"
	"github.com/TabbycatDebate/tabbycat/types"
)

func TestNewNATS(t *testing.T) {
	t.Run("NilConnection", func(t *testing.T) {
		_, err := NewNATS(nil, Config{Subject: "test"})
		require.ErrorIs(t, err, ErrConnRequired)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		_, nc := tabtest.StartEmbeddedNATS(t)
		_, err := NewNATS(nc, Config{})
		require.ErrorIs(t, err, ErrSubjectRequired)
	})
}

func TestNATSLifecycle(t *testing.T) {
	_, nc := tabtest.StartEmbeddedNATS(t)

	ch, err := NewNATS(nc, Config{Subject: "alloc.test"},
		WithLogger(tabtest.NewTestLogger(t)))
	require.NoError(t, err)

	require.ErrorIs(t, ch.Close(), ErrNotStarted)

	require.NoError(t, ch.Start(t.Context()))
	require.ErrorIs(t, ch.Start(t.Context()), ErrAlreadyStarted)

	require.NoError(t, ch.Close())
	require.ErrorIs(t, ch.Close(), ErrNotStarted)
}

func TestNATSSendReceive(t *testing.T) {
	ns, nc := tabtest.StartEmbeddedNATS(t)

	sender, err := NewNATS(nc, Config{Subject: "alloc.round-3"})
	require.NoError(t, err)

	nc2, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(nc2.Close)
	receiver, err := NewNATS(nc2, Config{Subject: "alloc.round-3"})
	require.NoError(t, err)

	var got atomic.Pointer[types.Envelope]
	receiver.OnReceive(func(env *types.Envelope) { got.Store(env) })
	require.NoError(t, receiver.Start(t.Context()))
	t.Cleanup(func() { _ = receiver.Close() })

	env := &types.Envelope{
		ComponentID: 1407,
		Updates: map[string][]types.Patch{
			"importance": {{ID: 71, Fields: map[string]any{"importance": float64(2)}}},
		},
	}
	require.NoError(t, sender.Send(t.Context(), env))

	require.Eventually(t, func() bool {
		return got.Load() != nil
	}, 5*time.Second, 10*time.Millisecond)

	received := got.Load()
	require.Equal(t, int64(1407), received.ComponentID)
	require.Len(t, received.Updates["importance"], 1)
	require.Equal(t, int64(71), received.Updates["importance"][0].ID)
}

func TestNATSOwnPublishLoopsBack(t *testing.T) {
	_, nc := tabtest.StartEmbeddedNATS(t)

	ch, err := NewNATS(nc, Config{Subject: "alloc.loopback"})
	require.NoError(t, err)

	var count atomic.Int32
	ch.OnReceive(func(_ *types.Envelope) { count.Add(1) })
	require.NoError(t, ch.Start(t.Context()))
	t.Cleanup(func() { _ = ch.Close() })

	require.NoError(t, ch.Send(t.Context(), &types.Envelope{ComponentID: 9}))

	// The subscribing connection hears its own publish; the store's echo
	// suppression is what keeps it from double-applying.
	require.Eventually(t, func() bool {
		return count.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNATSRemoveReceiver(t *testing.T) {
	_, nc := tabtest.StartEmbeddedNATS(t)

	ch, err := NewNATS(nc, Config{Subject: "alloc.remove"})
	require.NoError(t, err)

	var kept, removed atomic.Int32
	ch.OnReceive(func(_ *types.Envelope) { kept.Add(1) })
	id := ch.OnReceive(func(_ *types.Envelope) { removed.Add(1) })
	ch.RemoveReceiver(id)

	require.NoError(t, ch.Start(t.Context()))
	t.Cleanup(func() { _ = ch.Close() })

	require.NoError(t, ch.Send(t.Context(), &types.Envelope{ComponentID: 1}))

	require.Eventually(t, func() bool {
		return kept.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.Zero(t, removed.Load())
}
