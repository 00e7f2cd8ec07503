package tabbycat

import (
	"slices"
	"time"

	"github.com/TabbycatDebate/tabbycat/conflict"
	"github.com/TabbycatDebate/tabbycat/shard"
	"github.com/TabbycatDebate/tabbycat/types"
)

// AllUnits returns the working set keyed by unit id. The map is a copy;
// the units themselves are the live objects.
func (s *Store) AllUnits() map[int64]*types.AllocationUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]*types.AllocationUnit, len(s.units))
	for id, unit := range s.units {
		out[id] = unit
	}

	return out
}

// Unit returns one unit by id.
func (s *Store) Unit(id int64) (*types.AllocationUnit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[id]

	return unit, ok
}

// AllItems returns the allocatable pool keyed by item id.
func (s *Store) AllItems() map[int64]*types.AllocatableItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]*types.AllocatableItem, len(s.items))
	for id, item := range s.items {
		out[id] = item
	}

	return out
}

// Item returns one allocatable item by id.
func (s *Store) Item(id int64) (*types.AllocatableItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]

	return item, ok
}

// AllTeams collects every team currently occupying a side position on any
// unit, keyed by team id. Empty side positions are skipped.
func (s *Store) AllTeams() map[int64]*types.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams := make(map[int64]*types.Team)
	for _, unit := range s.units {
		for _, team := range unit.Teams {
			if team != nil {
				teams[team.ID] = team
			}
		}
	}

	return teams
}

// AllInstitutions returns the institutions from the bootstrap payload.
func (s *Store) AllInstitutions() map[int64]types.Institution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]types.Institution, len(s.institutions))
	for id, inst := range s.institutions {
		out[id] = inst
	}

	return out
}

// Highlights returns the highlight categories keyed by name.
func (s *Store) Highlights() map[string]*types.HighlightCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*types.HighlightCategory, len(s.highlights))
	for name, cat := range s.highlights {
		out[name] = cat
	}

	return out
}

// VisiblePartition returns the units this session should display under the
// current sharding configuration.
//
// With sharding disabled (nil local index) or an empty working set, every
// unit is returned. Otherwise the working set is ordered descending by the
// shard sort key (raw bracket value or importance), optionally
// interleaved, cut contiguously, and the local partition returned. Display
// ordering within the partition is a separate concern; see SortedVisible.
func (s *Store) VisiblePartition() []*types.AllocationUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := s.unitsSnapshotLocked()
	if s.sharding.LocalIndex == nil || len(units) == 0 {
		return units
	}

	switch s.sharding.SortKey {
	case types.ShardSortImportance:
		slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
			return descend(a.Importance, b.Importance)
		})
	default: // bracket
		slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
			return descend(a.BracketSortValue(), b.BracketSortValue())
		})
	}

	if s.sharding.Mode == types.DistributionInterleaved {
		units = shard.Interleave(units, s.sharding.SplitCount)
	}

	groups := shard.SplitContiguous(units, s.sharding.SplitCount)
	index := *s.sharding.LocalIndex
	if index < 0 || index >= len(groups) {
		// The degenerate split (more shards than units) can leave fewer
		// groups than requested; such a session simply sees nothing.
		return nil
	}

	return groups[index]
}

// SortedVisible returns VisiblePartition ordered by the display sort's
// SortIndex.
func (s *Store) SortedVisible() []*types.AllocationUnit {
	units := s.VisiblePartition()
	slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
		return a.SortIndex - b.SortIndex
	})

	return units
}

// Sharding returns the current sharding configuration.
func (s *Store) Sharding() types.ShardingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sharding
}

// DuplicateAllocations returns the adjudicator IDs allocated to more than
// one position across the working set. Recomputed on every call; the
// result order is unspecified.
func (s *Store) DuplicateAllocations() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return conflict.DuplicateAllocations(s.units)
}

// TeamClashes returns the team clash set for an adjudicator; ok is false
// when the bootstrap supplied no clash data.
func (s *Store) TeamClashes(id int64) ([]int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conflicts.TeamClashes(id)
}

// AdjudicatorClashes returns the adjudicator clash set for an adjudicator;
// ok is false when the bootstrap supplied no clash data.
func (s *Store) AdjudicatorClashes(id int64) ([]int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conflicts.AdjudicatorClashes(id)
}

// TeamHistories returns the team history set for an adjudicator; ok is
// false when the bootstrap supplied no history data.
func (s *Store) TeamHistories(id int64) ([]int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conflicts.TeamHistories(id)
}

// AdjudicatorHistories returns the adjudicator history set for an
// adjudicator; ok is false when the bootstrap supplied no history data.
func (s *Store) AdjudicatorHistories(id int64) ([]int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.conflicts.AdjudicatorHistories(id)
}

// HoverSubject returns the hovered entity and its type.
func (s *Store) HoverSubject() (subject any, hoverType string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hoverSubject, s.hoverType
}

// HoverConflicts returns the clash and history payloads for the hovered
// item.
func (s *Store) HoverConflicts() (clashes, histories any) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hoverClashes, s.hoverHistories
}

// Loading reports whether a long-running server operation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// LastSyncedAt returns the time of the last broadcast, or the zero time
// before any edit has been sent.
func (s *Store) LastSyncedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSyncedAt
}

// Round returns the round-scoped constants from the bootstrap payload.
func (s *Store) Round() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.round
}

// Tournament returns the tournament-scoped constants from the bootstrap
// payload.
func (s *Store) Tournament() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tournament
}
