// Package tabbycat provides the client-side synchronization store for
// real-time collaborative editing of debate allocations: adjudicators,
// venues, and teams placed on the debates or preformed panels of a round.
//
// The store holds the session's authoritative copy of the allocation
// dataset, applies local edits optimistically, and exchanges tagged change
// envelopes over a broadcast channel so every open editing session
// converges without echoing a session's own writes back onto itself.
//
// # Quick Start
//
//	store, err := tabbycat.NewStore(tabbycat.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store.LoadBootstrap(payload)
//
//	ch, err := channel.NewNATS(natsConn, channel.Config{Subject: "adjallocation.round-3"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ch.OnReceive(store.ReceiveEnvelope)
//	if err := ch.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := store.AttachChannel(ch); err != nil {
//	    log.Fatal(err)
//	}
//
//	// A local edit: visible immediately, broadcast to every session.
//	err = store.BroadcastAndApply(ctx, map[string][]tabbycat.Patch{
//	    "importance": {{ID: 71, Fields: map[string]any{"importance": 2}}},
//	})
//
// # Key Features
//
//   - Optimistic local edits: mutations apply before any network round-trip
//   - Echo suppression: a per-session origin tag prevents double-application
//     and broadcast loops
//   - Sharding: deterministic contiguous or interleaved partitioning so
//     several operators edit disjoint slices of one draw
//   - Derived views: display sorting, liveness, team extraction, and
//     duplicate-allocation detection recomputed when inputs change
//
// # Architecture
//
// Data flows one way through the store:
//
//	bootstrap payload → LoadBootstrap → local edits via BroadcastAndApply
//	→ broadcast channel → other sessions' ReceiveEnvelope → derived views
//
// Transports live in the channel subpackage (NATS and Redis pub/sub); the
// partitioning primitives live in shard; conflict/history lookups live in
// conflict. All of them are usable on their own.
package tabbycat
