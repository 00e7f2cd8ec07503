// Package shard provides the pure partitioning functions used to divide
// an ordered working set across concurrent editing sessions.
//
// SplitContiguous cuts an ordered sequence into contiguous near-equal
// groups; Interleave deals a sequence round-robin across virtual buckets
// so that a subsequent contiguous split gives every shard an even spread
// of strong and weak elements instead of a contiguous band.
//
// Both functions are deterministic, side-effect free, and never mutate
// their input.
package shard
