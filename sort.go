package tabbycat

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/TabbycatDebate/tabbycat/types"
)

// breakHighlightName is the highlight category whose option thresholds
// drive the liveness computation.
const breakHighlightName = "break"

// SetSorting recomputes the display sort under the given key and assigns
// every unit a dense SortIndex in ranked order. Rendering layers read
// SortIndex rather than comparators, so the ordering stays stable between
// recomputations.
//
// Supported keys and semantics:
//   - bracket: descending by bracket midpoint (range schema) or value
//   - room_rank: ascending by venue rank
//   - importance: descending, ties broken descending by raw bracket value
//   - liveness: descending by computed liveness, same tie-break
//
// Returns:
//   - error: ErrUnknownSortKey for an unsupported key
func (s *Store) SetSorting(key types.SortKey) error {
	switch key {
	case types.SortBracket, types.SortRoomRank, types.SortImportance, types.SortLiveness:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recomputeSortLocked(key)

	return nil
}

// SortingKey returns the active display sort key.
func (s *Store) SortingKey() types.SortKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortKey
}

// recomputeSortLocked ranks the working set under key and assigns dense
// sort indices. Also re-run after every patch application so SortIndex
// tracks the underlying data.
func (s *Store) recomputeSortLocked(key types.SortKey) {
	started := time.Now()
	s.sortKey = key

	if len(s.units) == 0 {
		return // e.g. preformed panels page prior to generation
	}

	units := s.unitsSnapshotLocked()

	switch key {
	case types.SortBracket:
		slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
			return descend(a.BracketMidpoint(), b.BracketMidpoint())
		})
	case types.SortRoomRank:
		slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
			return ascend(a.RoomRank, b.RoomRank)
		})
	case types.SortImportance:
		slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
			if c := descend(a.Importance, b.Importance); c != 0 {
				return c
			}

			return descend(a.BracketSortValue(), b.BracketSortValue())
		})
	case types.SortLiveness:
		for _, unit := range units {
			if _, ok := unit.Liveness(); !ok {
				unit.SetLiveness(s.computeLivenessLocked(unit))
			}
		}
		slices.SortStableFunc(units, func(a, b *types.AllocationUnit) int {
			al, _ := a.Liveness()
			bl, _ := b.Liveness()
			if c := descend(float64(al), float64(bl)); c != 0 {
				return c
			}

			return descend(a.BracketSortValue(), b.BracketSortValue())
		})
	}

	for i, unit := range units {
		unit.SortIndex = i
	}

	s.metrics.RecordSortRecompute(key, time.Since(started).Seconds())
}

// unitsSnapshotLocked returns the working set in id order. Map iteration
// order is randomized per call, so every ordered read must start from this
// deterministic base; the stable sorts built on it then keep tied units in
// the same relative order on every read and in every session.
func (s *Store) unitsSnapshotLocked() []*types.AllocationUnit {
	units := make([]*types.AllocationUnit, 0, len(s.units))
	for _, unit := range s.units {
		units = append(units, unit)
	}
	slices.SortFunc(units, func(a, b *types.AllocationUnit) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return units
}

// computeLivenessLocked counts, across the unit's teams, the break
// categories for which the team's points sit strictly between the
// category's dead and safe thresholds. Thresholds come from the "break"
// highlight options keyed by category id.
func (s *Store) computeLivenessLocked(unit *types.AllocationUnit) int {
	breakCat, ok := s.highlights[breakHighlightName]
	if !ok {
		return 0
	}

	liveness := 0
	for _, team := range unit.Teams {
		if team == nil {
			continue // e.g. while sides are being edited
		}
		for _, categoryID := range team.BreakCategories {
			category, ok := breakCat.Options[categoryID]
			if !ok {
				continue
			}
			if team.Points > category.Dead && team.Points < category.Safe {
				liveness++
			}
		}
	}

	return liveness
}

// ascend and descend are float comparators for SortStableFunc.
func ascend(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func descend(a, b float64) int {
	return ascend(b, a)
}
