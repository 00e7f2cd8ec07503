package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/TabbycatDebate/tabbycat/types"
)

// Errors returned by the NATS channel.
var (
	// ErrConnRequired is returned when the NATS connection is nil.
	ErrConnRequired = errors.New("NATS connection is required")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("channel already started")

	// ErrNotStarted is returned when Close is called before Start.
	ErrNotStarted = errors.New("channel not started")
)

// NATS is a broadcast channel over core NATS pub/sub.
//
// Core NATS gives exactly the delivery contract the store assumes:
// fire-and-forget publishing with per-origin ordering and no replay. The
// subscribing connection also receives its own publishes, so the store's
// origin-tag suppression is load-bearing.
type NATS struct {
	conn    *nats.Conn
	cfg     Config
	logger  types.Logger
	metrics types.MetricsCollector
	fan     *fanout
	rng     *rand.Rand

	mu      sync.Mutex
	sub     *nats.Subscription
	started bool
}

// Compile-time assertion that NATS implements Channel.
var _ types.Channel = (*NATS)(nil)

// NewNATS creates a NATS-backed broadcast channel.
//
// Parameters:
//   - conn: Established NATS connection (shared with the rest of the app)
//   - cfg: Channel configuration; Subject is required
//   - opts: Optional logger and metrics
//
// Returns:
//   - *NATS: Initialized channel; call Start to begin receiving
//   - error: ErrConnRequired or ErrSubjectRequired
//
// Example:
//
//	ch, err := channel.NewNATS(nc, channel.Config{Subject: "adjallocation.round-3"})
//	if err != nil { /* handle */ }
//	ch.OnReceive(store.ReceiveEnvelope)
//	if err := ch.Start(ctx); err != nil { /* handle */ }
func NewNATS(conn *nats.Conn, cfg Config, opts ...Option) (*NATS, error) {
	if conn == nil {
		return nil, ErrConnRequired
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	options := resolve(opts)

	return &NATS{
		conn:    conn,
		cfg:     cfg,
		logger:  options.logger,
		metrics: options.metrics,
		fan:     newFanout(options.logger, options.metrics),
		rng:     newRetryRNG(cfg.RetrySeed),
	}, nil
}

// OnReceive registers a receiver for inbound envelopes and returns its
// registration id. The store's ReceiveEnvelope is the usual receiver.
func (c *NATS) OnReceive(fn types.ReceiveFunc) uint64 {
	return c.fan.add(fn)
}

// RemoveReceiver drops a previously registered receiver.
func (c *NATS) RemoveReceiver(id uint64) {
	c.fan.remove(id)
}

// Start subscribes to the configured subject and begins dispatching
// inbound envelopes. Subscription establishment is retried with jittered
// backoff up to MaxRetries.
//
// Returns:
//   - error: ErrAlreadyStarted, context error, or the final subscribe error
func (c *NATS) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}

	var (
		sub   *nats.Subscription
		err   error
		delay time.Duration
	)
	for attempt := 0; ; attempt++ {
		sub, err = c.conn.Subscribe(c.cfg.Subject, func(msg *nats.Msg) {
			c.fan.dispatch(msg.Data)
		})
		if err == nil {
			break
		}
		if attempt >= c.cfg.MaxRetries {
			return fmt.Errorf("subscribe to %q: %w", c.cfg.Subject, err)
		}
		c.metrics.RecordSubscribeRetry(attempt + 1)
		delay = jitterBackoff(delay, c.cfg.RetryBackoff, 2.0, c.cfg.RetryBackoffCap, c.rng)
		c.logger.Warn("subscribe failed, retrying",
			"subject", c.cfg.Subject, "attempt", attempt+1, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	c.sub = sub
	c.started = true
	c.logger.Info("channel started", "subject", c.cfg.Subject)

	return nil
}

// Close drains the subscription and stops dispatching.
func (c *NATS) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return ErrNotStarted
	}
	c.started = false
	if err := c.sub.Unsubscribe(); err != nil {
		return fmt.Errorf("unsubscribe from %q: %w", c.cfg.Subject, err)
	}
	c.sub = nil

	return nil
}

// Send publishes an envelope to every session on the subject, including
// this one. There is no retry; transient transport failure surfaces to
// the caller and delivery recovery is the NATS client's concern.
func (c *NATS) Send(_ context.Context, env *types.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := c.conn.Publish(c.cfg.Subject, data); err != nil {
		return fmt.Errorf("publish to %q: %w", c.cfg.Subject, err)
	}
	c.metrics.RecordEnvelopeSent(len(data))

	return nil
}
