package shard

import "slices"

// SplitContiguous cuts items into n ordered contiguous groups whose
// concatenation reproduces items exactly.
//
// When len(items) divides evenly by n, every group holds exactly
// len(items)/n elements. Otherwise n-1 equal groups are emitted followed
// by a larger remainder group; the equal-group size is decremented by one
// when it would otherwise divide the length evenly, so the remainder group
// is never empty.
//
// Known edge case, kept as a tested contract: when n exceeds len(items)
// the equal-group size evaluates to zero and every element falls into the
// single trailing remainder group, regardless of the requested n. An empty
// input yields zero groups.
//
// Parameters:
//   - items: Ordered sequence to cut
//   - n: Requested group count (>= 1; n < 1 returns nil)
//
// Returns:
//   - [][]T: Ordered groups covering every element exactly once
func SplitContiguous[T any](items []T, n int) [][]T {
	if n < 1 {
		return nil
	}

	size := len(items) / n
	if len(items)%n == 0 {
		if size == 0 {
			return [][]T{}
		}
		groups := make([][]T, 0, n)
		for i := 0; i < len(items); i += size {
			groups = append(groups, slices.Clone(items[i:i+size]))
		}

		return groups
	}

	// Uneven: n-1 equal groups plus a larger remainder group.
	equalGroups := n - 1
	if size > 0 && len(items)%size == 0 {
		size-- // keep the remainder group non-degenerate
	}
	groups := make([][]T, 0, n)
	i := 0
	for ; i < size*equalGroups; i += size {
		groups = append(groups, slices.Clone(items[i:i+size]))
	}
	groups = append(groups, slices.Clone(items[i:]))

	return groups
}
