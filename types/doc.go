// Package types contains the core data model and capability interfaces
// shared across the library.
//
// The root tabbycat package re-exports these definitions via type aliases,
// so users normally refer to tabbycat.AllocationUnit, tabbycat.Channel and
// so on. Subpackages (shard, conflict, channel, source) depend on types
// directly, which keeps the dependency graph acyclic.
package types
