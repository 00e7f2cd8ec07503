package types

import "context"

// Channel is the broadcast transport carrying envelopes between editing
// sessions. Sending is fire-and-forget from the store's perspective: the
// store does not retry failed sends, and delivery ordering is only
// guaranteed per origin.
//
// Implementations push inbound envelopes to registered receivers (see the
// channel package); the store's ReceiveEnvelope is the usual receiver.
type Channel interface {
	// Send publishes an envelope to every session on the channel,
	// including the sender (the store suppresses its own echoes).
	Send(ctx context.Context, env *Envelope) error
}

// ReceiveFunc handles an inbound envelope pushed by a transport.
type ReceiveFunc func(env *Envelope)

// BootstrapSource supplies the initial dataset for a session.
type BootstrapSource interface {
	// Fetch returns the bootstrap payload. Called once per session.
	Fetch(ctx context.Context) (*Bootstrap, error)
}
