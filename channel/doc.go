// Package channel provides broadcast transport implementations for the
// synchronization store.
//
// A channel is a full-duplex pub/sub bus: Send publishes an envelope to
// every session subscribed to the same subject, including the sender, and
// inbound envelopes are fanned out to registered receivers. Echo
// suppression is the store's job, not the transport's; both
// implementations deliberately deliver a session's own publishes back to
// it.
//
// Two transports are provided: NATS core pub/sub (NewNATS) and Redis
// pub/sub (NewRedis). Both guarantee per-origin delivery order, which is
// all the store requires.
package channel
