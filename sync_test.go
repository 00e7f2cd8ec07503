package tabbycat_test

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	tabbycat "github.com/TabbycatDebate/tabbycat"
	"github.com/TabbycatDebate/tabbycat/channel"
	tabtest "github.com/TabbycatDebate/tabbycat/testing"
	"github.com/TabbycatDebate/tabbycat/types"
)

// startSession spins up a store wired to a NATS channel on the shared
// subject, mirroring how two operators would open the same edit page.
func startSession(t *testing.T, nc *nats.Conn, originID int64) *tabbycat.Store {
	t.Helper()

	store, err := tabbycat.NewStore(tabbycat.DefaultConfig(),
		tabbycat.WithOriginID(originID),
		tabbycat.WithLogger(tabtest.NewTestLogger(t)))
	require.NoError(t, err)
	store.LoadBootstrap(&types.Bootstrap{
		Units: []*types.AllocationUnit{
			{ID: 71, Bracket: 3, RoomRank: 2},
			{ID: 72, Bracket: 5, RoomRank: 1},
		},
	})

	ch, err := channel.NewNATS(nc, channel.Config{Subject: "adjallocation.round-3"},
		channel.WithLogger(tabtest.NewTestLogger(t)))
	require.NoError(t, err)
	ch.OnReceive(store.ReceiveEnvelope)
	require.NoError(t, ch.Start(t.Context()))
	t.Cleanup(func() { _ = ch.Close() })

	require.NoError(t, store.AttachChannel(ch))

	return store
}

func TestTwoSessionSync(t *testing.T) {
	ns, ncA := tabtest.StartEmbeddedNATS(t)
	ncB, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(ncB.Close)

	sessionA := startSession(t, ncA, 1001)
	sessionB := startSession(t, ncB, 2002)

	// An edit on A is visible there immediately and reaches B over the
	// channel.
	err = sessionA.BroadcastAndApply(t.Context(), map[string][]types.Patch{
		"importance": {{ID: 71, Fields: map[string]any{"importance": float64(2)}}},
	})
	require.NoError(t, err)

	unit, _ := sessionA.Unit(71)
	require.Equal(t, float64(2), unit.Importance)

	require.Eventually(t, func() bool {
		remote, ok := sessionB.Unit(71)

		return ok && remote.Importance == 2
	}, 5*time.Second, 10*time.Millisecond)

	// A hears its own publish back but suppresses it; a subsequent remote
	// edit from B still lands on A, so suppression is per-envelope, not a
	// dead channel.
	err = sessionB.BroadcastAndApply(t.Context(), map[string][]types.Patch{
		"importance": {{ID: 72, Fields: map[string]any{"importance": float64(3)}}},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		remote, ok := sessionA.Unit(72)

		return ok && remote.Importance == 3
	}, 5*time.Second, 10*time.Millisecond)

	unit, _ = sessionA.Unit(71)
	require.Equal(t, float64(2), unit.Importance)
}
