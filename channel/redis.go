package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/TabbycatDebate/tabbycat/types"
)

// ErrClientRequired is returned when the Redis client is nil.
var ErrClientRequired = errors.New("redis client is required")

// Redis is a broadcast channel over Redis pub/sub, matching the channel
// layer the original deployment runs on. Like the NATS transport it
// delivers a session's own publishes back to it; echo suppression stays
// with the store.
type Redis struct {
	client  *redis.Client
	cfg     Config
	logger  types.Logger
	metrics types.MetricsCollector
	fan     *fanout

	mu      sync.Mutex
	pubsub  *redis.PubSub
	started bool
	wg      sync.WaitGroup
}

// Compile-time assertion that Redis implements Channel.
var _ types.Channel = (*Redis)(nil)

// NewRedis creates a Redis-backed broadcast channel.
//
// Parameters:
//   - client: Established Redis client
//   - cfg: Channel configuration; Subject is required
//   - opts: Optional logger and metrics
//
// Returns:
//   - *Redis: Initialized channel; call Start to begin receiving
//   - error: ErrClientRequired or ErrSubjectRequired
func NewRedis(client *redis.Client, cfg Config, opts ...Option) (*Redis, error) {
	if client == nil {
		return nil, ErrClientRequired
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	options := resolve(opts)

	return &Redis{
		client:  client,
		cfg:     cfg,
		logger:  options.logger,
		metrics: options.metrics,
		fan:     newFanout(options.logger, options.metrics),
	}, nil
}

// OnReceive registers a receiver for inbound envelopes and returns its
// registration id.
func (c *Redis) OnReceive(fn types.ReceiveFunc) uint64 {
	return c.fan.add(fn)
}

// RemoveReceiver drops a previously registered receiver.
func (c *Redis) RemoveReceiver(id uint64) {
	c.fan.remove(id)
}

// Start subscribes to the configured channel and begins dispatching
// inbound envelopes on a background goroutine. The go-redis client owns
// reconnection; the receive loop simply drains until Close.
//
// Returns:
//   - error: ErrAlreadyStarted or the subscription confirmation error
func (c *Redis) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return ErrAlreadyStarted
	}

	pubsub := c.client.Subscribe(ctx, c.cfg.Subject)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return fmt.Errorf("subscribe to %q: %w", c.cfg.Subject, err)
	}

	c.pubsub = pubsub
	c.started = true
	c.wg.Add(1)
	go c.receiveLoop(pubsub.Channel())
	c.logger.Info("channel started", "subject", c.cfg.Subject)

	return nil
}

// receiveLoop drains the subscription until it is closed.
func (c *Redis) receiveLoop(msgs <-chan *redis.Message) {
	defer c.wg.Done()

	for msg := range msgs {
		c.fan.dispatch([]byte(msg.Payload))
	}
}

// Close tears down the subscription and waits for the receive loop to
// drain.
func (c *Redis) Close() error {
	c.mu.Lock()
	if !c.started {
		c.mu.Unlock()

		return ErrNotStarted
	}
	c.started = false
	pubsub := c.pubsub
	c.pubsub = nil
	c.mu.Unlock()

	err := pubsub.Close()
	c.wg.Wait()
	if err != nil {
		return fmt.Errorf("close subscription: %w", err)
	}

	return nil
}

// Send publishes an envelope to every session on the channel, including
// this one. No retry; see the NATS transport for the rationale.
func (c *Redis) Send(ctx context.Context, env *types.Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := c.client.Publish(ctx, c.cfg.Subject, data).Err(); err != nil {
		return fmt.Errorf("publish to %q: %w", c.cfg.Subject, err)
	}
	c.metrics.RecordEnvelopeSent(len(data))

	return nil
}
