package channel

import (
	"github.com/TabbycatDebate/tabbycat/internal/logger"
	"github.com/TabbycatDebate/tabbycat/internal/metrics"
	"github.com/TabbycatDebate/tabbycat/types"
)

// Option configures a channel with optional dependencies.
type Option func(*channelOptions)

// channelOptions holds optional channel configuration.
type channelOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithLogger sets a logger.
//
// Parameters:
//   - log: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewNATS / NewRedis
func WithLogger(log types.Logger) Option {
	return func(o *channelOptions) {
		o.logger = log
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - m: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewNATS / NewRedis
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *channelOptions) {
		o.metrics = m
	}
}

// resolve applies options and fills defaults.
func resolve(opts []Option) *channelOptions {
	options := &channelOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return options
}
