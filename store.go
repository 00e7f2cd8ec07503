package tabbycat

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/TabbycatDebate/tabbycat/conflict"
	"github.com/TabbycatDebate/tabbycat/internal/logger"
	"github.com/TabbycatDebate/tabbycat/internal/metrics"
	"github.com/TabbycatDebate/tabbycat/types"
)

// Store is the synchronization store for one editing session.
//
// It owns the session's copy of the allocation dataset, applies local
// edits optimistically, and exchanges tagged envelopes over the attached
// broadcast channel. All mutation entry points run to completion
// synchronously; the store's mutex only exists because the transport may
// push ReceiveEnvelope between any two local operations.
type Store struct {
	mu sync.RWMutex

	cfg Config

	units      map[int64]*types.AllocationUnit
	items      map[int64]*types.AllocatableItem
	highlights map[string]*types.HighlightCategory

	institutions map[int64]types.Institution
	regions      map[int64]types.Region
	round        map[string]any
	tournament   map[string]any

	conflicts *conflict.Index
	sharding  types.ShardingConfig
	sortKey   types.SortKey

	// Ephemeral UI-hint state.
	hoverSubject   any
	hoverType      string
	hoverClashes   any
	hoverHistories any
	loading        bool
	lastSyncedAt   time.Time

	channel  types.Channel
	originID int64

	logger     types.Logger
	metrics    types.MetricsCollector
	notifier   types.Notifier
	translator types.Translator
	now        func() time.Time
}

// NewStore creates a synchronization store.
//
// Parameters:
//   - cfg: Store configuration (defaults are applied; nil uses DefaultConfig)
//   - opts: Optional dependencies (logger, metrics, notifier, ...)
//
// Returns:
//   - *Store: Initialized store with an empty working set
//   - error: ErrInvalidConfig when the configuration fails validation
//
// Example:
//
//	store, err := tabbycat.NewStore(tabbycat.DefaultConfig(),
//	    tabbycat.WithLogger(log), tabbycat.WithMetrics(collector))
func NewStore(cfg *Config, opts ...Option) (*Store, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &storeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	if options.now == nil {
		options.now = time.Now
	}

	return &Store{
		cfg:          *cfg,
		units:        make(map[int64]*types.AllocationUnit),
		items:        make(map[int64]*types.AllocatableItem),
		highlights:   make(map[string]*types.HighlightCategory),
		institutions: make(map[int64]types.Institution),
		regions:      make(map[int64]types.Region),
		sharding:     cfg.Sharding,
		sortKey:      cfg.DefaultSortKey,
		originID:     options.originID,
		logger:       options.logger,
		metrics:      options.metrics,
		notifier:     options.notifier,
		translator:   options.translator,
		now:          options.now,
	}, nil
}

// LoadBootstrap populates the store from the initial dataset: units and
// items keyed by id, round and tournament constants copied verbatim,
// highlight categories expanded with their deterministic option tags, and
// the conflict index built from the precomputed clash and history sets.
// The default display sort is applied immediately.
//
// Call exactly once per session, before any mutation.
func (s *Store) LoadBootstrap(payload *types.Bootstrap) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round = payload.Round
	s.tournament = payload.Tournament

	for _, unit := range payload.Units {
		s.units[unit.ID] = unit
	}
	for _, item := range payload.Items {
		s.items[item.ID] = item
	}
	for _, inst := range payload.Institutions {
		s.institutions[inst.ID] = inst
	}
	for _, region := range payload.Regions {
		s.regions[region.ID] = region
	}

	for name, options := range payload.Extra.Highlights {
		s.highlights[name] = types.NewHighlightCategory(name, options)
	}

	s.conflicts = conflict.NewIndex(payload.Extra.Clashes, payload.Extra.Histories)

	s.metrics.RecordUnitCount(len(s.units))
	s.recomputeSortLocked(s.cfg.DefaultSortKey)
	s.logger.Info("bootstrap loaded",
		"units", len(s.units), "items", len(s.items), "highlights", len(s.highlights))
}

// LoadFrom fetches the bootstrap payload from a source and loads it.
//
// Parameters:
//   - ctx: Context for the fetch
//   - src: Bootstrap source (e.g. source.Static)
//
// Returns:
//   - error: Fetch failure; the store is left untouched on error
func (s *Store) LoadFrom(ctx context.Context, src types.BootstrapSource) error {
	payload, err := src.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch bootstrap: %w", err)
	}
	s.LoadBootstrap(payload)

	return nil
}

// AttachChannel stores the broadcast transport and establishes this
// session's origin tag. Must be called before any broadcast; inbound
// delivery is wired separately by registering ReceiveEnvelope with the
// transport.
//
// Parameters:
//   - ch: Broadcast channel implementation
//
// Returns:
//   - error: ErrChannelRequired when ch is nil
func (s *Store) AttachChannel(ch types.Channel) error {
	if ch == nil {
		return ErrChannelRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.channel = ch
	if s.originID == 0 {
		s.originID = newOriginID()
	}
	s.logger.Debug("channel attached", "originID", s.originID)

	return nil
}

// OriginID returns the session's origin tag, or zero before AttachChannel
// (unless fixed via WithOriginID).
func (s *Store) OriginID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.originID
}

// ApplyPatch merges unit patches into the working set: existing units are
// updated field by field (last write wins per field); unknown IDs insert
// brand-new units, which is how server-side regeneration (recreated
// panels, re-run allocations) reaches open sessions. Derived state that
// depends on the patched fields is invalidated and recomputed.
func (s *Store) ApplyPatch(changes []types.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyUnitPatchesLocked(changes)
	s.recomputeSortLocked(s.sortKey)
}

func (s *Store) applyUnitPatchesLocked(changes []types.Patch) {
	for _, patch := range changes {
		if unit, ok := s.units[patch.ID]; ok {
			unit.Apply(patch.Fields)
			for attr := range patch.Fields {
				s.metrics.RecordPatchApplied(attr, 1)
			}

			continue
		}

		// Entirely new unit: seed it from the patch fields.
		unit := &types.AllocationUnit{ID: patch.ID}
		unit.Apply(patch.Fields)
		s.units[patch.ID] = unit
		s.metrics.RecordUnitUpserted()
		s.logger.Debug("unit inserted from patch", "id", patch.ID)
	}
	s.metrics.RecordUnitCount(len(s.units))
}

// ApplyItemPatch merges patches into allocatable items. Unlike units,
// unknown IDs are skipped: the item pool is fixed by the bootstrap
// payload.
func (s *Store) ApplyItemPatch(changes []types.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, patch := range changes {
		item, ok := s.items[patch.ID]
		if !ok {
			continue
		}
		item.Apply(patch.Fields)
		for attr := range patch.Fields {
			s.metrics.RecordPatchApplied(attr, 1)
		}
	}
}

// TouchUnallocated stamps the named items with the current time. The
// stamp only preserves the manual drag order of not-yet-allocated items
// across unrelated remote updates; it is not a version clock.
func (s *Store) TouchUnallocated(ids []int64) {
	now := s.now().Unix()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			item.LastModified = now
		}
	}
}

// BroadcastAndApply is the write path for local edits: the patches are
// applied locally first (zero round-trip visibility), then tagged with the
// session's origin and sent over the channel.
//
// The local application stands even when the send fails; the store favors
// availability and leaves transport recovery to the transport.
//
// Parameters:
//   - ctx: Context for the send
//   - updates: Attribute-keyed patch groups, e.g.
//     {"importance": [{ID: 71, Fields: {"importance": 2}}]}
//
// Returns:
//   - error: ErrChannelNotAttached, or the channel's send error
func (s *Store) BroadcastAndApply(ctx context.Context, updates map[string][]types.Patch) error {
	s.mu.Lock()
	for _, changes := range updates {
		s.applyUnitPatchesLocked(changes)
	}
	s.recomputeSortLocked(s.sortKey)

	ch := s.channel
	env := &types.Envelope{ComponentID: s.originID, Updates: updates}
	s.lastSyncedAt = s.now()
	s.mu.Unlock()

	if ch == nil {
		s.metrics.RecordBroadcast("failure")

		return ErrChannelNotAttached
	}
	if err := ch.Send(ctx, env); err != nil {
		s.metrics.RecordBroadcast("failure")
		s.logger.Error("broadcast failed", "error", err)

		return fmt.Errorf("send envelope: %w", err)
	}
	s.metrics.RecordBroadcast("success")

	return nil
}

// ReceiveEnvelope is the read path, invoked by the transport for every
// inbound envelope.
//
// A message-bearing envelope is surfaced through the notifier and clears
// the loading flag regardless of origin, so a modal blocked on a
// server-side operation never hangs on an error path. Patches tagged with
// this session's own origin are echoes of its own writes and are dropped;
// everything else is applied.
func (s *Store) ReceiveEnvelope(env *types.Envelope) {
	if env == nil {
		return
	}

	if env.Message != nil {
		s.surfaceMessage(*env.Message)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if env.ComponentID == s.originID {
		s.metrics.RecordEchoSuppressed()

		return
	}

	applied := false
	if len(env.Units) > 0 {
		s.applyUnitPatchesLocked(env.Units)
		applied = true
	}
	for _, changes := range env.Updates {
		s.applyUnitPatchesLocked(changes)
		applied = true
	}
	if applied {
		s.recomputeSortLocked(s.sortKey)
	}
}

// surfaceMessage translates and delivers a server-pushed message, then
// clears the loading flag.
func (s *Store) surfaceMessage(msg types.Message) {
	s.metrics.RecordRemoteMessage(msg.Type)

	if s.translator != nil {
		msg.Text = s.translator.Gettext(msg.Text)
	}
	if s.notifier != nil {
		s.notifier.Notify(msg)
	} else {
		s.logger.Info("server message", "type", msg.Type, "text", msg.Text)
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// ToggleHighlight flips the named category's active flag after
// deactivating every other category, so at most one highlight mode is
// active at a time.
//
// Returns:
//   - error: ErrUnknownHighlight when the category was not defined by the
//     bootstrap payload
func (s *Store) ToggleHighlight(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.highlights[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHighlight, name)
	}
	for key, cat := range s.highlights {
		if key != name {
			cat.Active = false
		}
	}
	target.Active = !target.Active

	return nil
}

// SetSharding replaces the sharding configuration after validation.
//
// Returns:
//   - error: ErrInvalidSharding when the configuration is inconsistent
func (s *Store) SetSharding(cfg types.ShardingConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSharding, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sharding = cfg

	return nil
}

// SetHoverPanel records the entity currently hovered by the operator.
func (s *Store) SetHoverPanel(subject any, hoverType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hoverSubject = subject
	s.hoverType = hoverType
}

// UnsetHoverPanel clears the hover subject.
func (s *Store) UnsetHoverPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hoverSubject = nil
	s.hoverType = ""
}

// SetHoverConflicts records the clash and history payloads to highlight
// while an item is hovered.
func (s *Store) SetHoverConflicts(clashes, histories any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hoverClashes = clashes
	s.hoverHistories = histories
}

// UnsetHoverConflicts clears the hover conflict payloads.
func (s *Store) UnsetHoverConflicts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hoverClashes = nil
	s.hoverHistories = nil
}

// SetLoadingState toggles the loading flag used by modals awaiting a
// long-running server operation. The flag is also cleared whenever a
// message-bearing envelope arrives.
func (s *Store) SetLoadingState(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

// newOriginID derives a random per-session origin tag from system entropy.
// The tag only distinguishes this session's echoes from other sessions'
// writes; it carries no ordering semantics.
func newOriginID() int64 {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err != nil {
		binary.LittleEndian.PutUint64(buf[:8], uint64(time.Now().UnixNano()))
	}

	id := int64(xxh3.Hash(buf[:]) & (1<<62 - 1))
	if id == 0 {
		id = 1
	}

	return id
}
