package conflict

import "github.com/TabbycatDebate/tabbycat/types"

// DuplicateAllocations scans every unit's adjudicator positions and
// returns the IDs allocated more than once across the whole working set,
// including multiple appearances within a single unit. The result has no
// ordering guarantee; an ID appears at most once regardless of how many
// extra allocations it has.
func DuplicateAllocations(units map[int64]*types.AllocationUnit) []int64 {
	seen := make(map[int64]struct{})
	dup := make(map[int64]struct{})
	for _, unit := range units {
		for _, ids := range unit.Adjudicators {
			for _, id := range ids {
				if _, ok := seen[id]; ok {
					dup[id] = struct{}{}

					continue
				}
				seen[id] = struct{}{}
			}
		}
	}

	out := make([]int64, 0, len(dup))
	for id := range dup {
		out = append(out, id)
	}

	return out
}
