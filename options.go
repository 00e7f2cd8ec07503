package tabbycat

import (
	"time"

	"github.com/TabbycatDebate/tabbycat/types"
)

// Option configures a Store with optional dependencies.
type Option func(*storeOptions)

// storeOptions holds optional Store configuration.
type storeOptions struct {
	logger     types.Logger
	metrics    types.MetricsCollector
	notifier   types.Notifier
	translator types.Translator
	originID   int64
	now        func() time.Time
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewStore
//
// Example:
//
//	store, _ := tabbycat.NewStore(cfg, tabbycat.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger types.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewStore
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *storeOptions) {
		o.metrics = metrics
	}
}

// WithNotifier sets the notifier used to surface server-pushed messages.
// Without it, messages are logged and otherwise dropped.
//
// Parameters:
//   - notifier: Notifier implementation
//
// Returns:
//   - Option: Functional option for NewStore
func WithNotifier(notifier types.Notifier) Option {
	return func(o *storeOptions) {
		o.notifier = notifier
	}
}

// WithTranslator sets the translator applied to server-pushed message text
// before it reaches the notifier. Without it, text passes through
// untranslated.
//
// Parameters:
//   - translator: Translator implementation
//
// Returns:
//   - Option: Functional option for NewStore
func WithTranslator(translator types.Translator) Option {
	return func(o *storeOptions) {
		o.translator = translator
	}
}

// WithOriginID fixes the session's origin tag instead of generating a
// random one at AttachChannel. Intended for tests that need deterministic
// echo behavior.
//
// Parameters:
//   - id: Origin tag to use for this session (must be non-zero)
//
// Returns:
//   - Option: Functional option for NewStore
func WithOriginID(id int64) Option {
	return func(o *storeOptions) {
		o.originID = id
	}
}

// WithClock overrides the time source used for lastSyncedAt and the
// unallocated-item modification stamps. Intended for tests.
//
// Parameters:
//   - now: Replacement for time.Now
//
// Returns:
//   - Option: Functional option for NewStore
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) {
		o.now = now
	}
}
