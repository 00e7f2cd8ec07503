package shard

import "slices"

// Interleave returns a permutation of items produced by dealing them
// round-robin into n virtual buckets (element i goes to bucket i mod n)
// and concatenating the buckets in order.
//
// Cutting the result with SplitContiguous(_, n) therefore yields groups
// that each sample evenly across the original index range: for twelve
// elements and n=3, the first group holds original indices 0, 3, 6, 9.
//
// Parameters:
//   - items: Ordered sequence to permute
//   - n: Bucket count; n <= 1 returns a plain copy
//
// Returns:
//   - []T: The interleaved permutation (same length, same multiset)
func Interleave[T any](items []T, n int) []T {
	if n <= 1 {
		return slices.Clone(items)
	}

	buckets := make([][]T, n)
	for i, item := range items {
		b := i % n
		buckets[b] = append(buckets[b], item)
	}

	out := make([]T, 0, len(items))
	for _, bucket := range buckets {
		out = append(out, bucket...)
	}

	return out
}
