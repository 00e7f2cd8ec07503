package tabbycat

import "github.com/TabbycatDebate/tabbycat/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types via
// type aliases. Subpackages (shard, conflict, channel, source) depend on
// `types` directly without importing the root package, while users get the
// convenient tabbycat.AllocationUnit, tabbycat.Channel, etc.
type (
	AllocationUnit    = types.AllocationUnit
	Team              = types.Team
	AllocatableItem   = types.AllocatableItem
	HighlightCategory = types.HighlightCategory
	HighlightOption   = types.HighlightOption
	ShardingConfig    = types.ShardingConfig
	Envelope          = types.Envelope
	Patch             = types.Patch
	Message           = types.Message
	Bootstrap         = types.Bootstrap
	ConflictSets      = types.ConflictSets
	Institution       = types.Institution
	Region            = types.Region
)

// Re-export capability interfaces from the types subpackage.
type (
	Channel          = types.Channel
	BootstrapSource  = types.BootstrapSource
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Notifier         = types.Notifier
	Translator       = types.Translator
)

// Re-export sort and sharding enumerations.
type (
	SortKey          = types.SortKey
	ShardSortKey     = types.ShardSortKey
	DistributionMode = types.DistributionMode
)

const (
	SortBracket    = types.SortBracket
	SortRoomRank   = types.SortRoomRank
	SortImportance = types.SortImportance
	SortLiveness   = types.SortLiveness

	ShardSortBracket    = types.ShardSortBracket
	ShardSortImportance = types.ShardSortImportance

	DistributionContiguous  = types.DistributionContiguous
	DistributionInterleaved = types.DistributionInterleaved
)
