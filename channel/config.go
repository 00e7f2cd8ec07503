package channel

import (
	"errors"
	"time"
)

// Default retry settings for establishing a subscription.
const (
	DefaultMaxRetries      = 3
	DefaultRetryBackoff    = 100 * time.Millisecond
	DefaultRetryBackoffCap = 2 * time.Second
)

// ErrSubjectRequired is returned when the configuration has no subject.
var ErrSubjectRequired = errors.New("channel subject is required")

// Config configures a broadcast channel.
type Config struct {
	// Subject is the pub/sub subject (NATS) or channel name (Redis) the
	// editing sessions share, typically scoped to the edited round,
	// e.g. "adjallocation.round-3".
	Subject string `yaml:"subject"`

	// MaxRetries bounds subscription establishment retries.
	// Defaults to DefaultMaxRetries.
	MaxRetries int `yaml:"maxRetries"`

	// RetryBackoff is the base delay between subscription retries; actual
	// delays use decorrelated jitter. Defaults to DefaultRetryBackoff.
	RetryBackoff time.Duration `yaml:"retryBackoff"`

	// RetryBackoffCap caps the jittered delay.
	// Defaults to DefaultRetryBackoffCap.
	RetryBackoffCap time.Duration `yaml:"retryBackoffCap"`

	// RetrySeed makes retry jitter deterministic when non-zero. Tests
	// only; leave zero in production.
	RetrySeed int64 `yaml:"retrySeed"`
}

// setDefaults fills unset retry fields.
func (c *Config) setDefaults() {
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RetryBackoff == 0 {
		c.RetryBackoff = DefaultRetryBackoff
	}
	if c.RetryBackoffCap == 0 {
		c.RetryBackoffCap = DefaultRetryBackoffCap
	}
}

// validate checks the configuration.
func (c *Config) validate() error {
	if c.Subject == "" {
		return ErrSubjectRequired
	}

	return nil
}
