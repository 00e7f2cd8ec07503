package types

import "fmt"

// DistributionMode selects how the ordered working set is distributed
// across shards before the contiguous split.
type DistributionMode string

const (
	// DistributionContiguous cuts the ordered set into contiguous runs, so
	// one shard gets the strongest units, the next shard the next band, etc.
	DistributionContiguous DistributionMode = "Contiguous"

	// DistributionInterleaved deals the ordered set round-robin across the
	// shards first, so each shard sees an even spread of strong and weak
	// units.
	DistributionInterleaved DistributionMode = "Interleaved"
)

// ShardSortKey selects the ordering applied before the working set is cut
// into shards. This is independent of the display sort.
type ShardSortKey string

const (
	// ShardSortBracket orders descending by raw bracket value
	// (bracket_min under the range schema).
	ShardSortBracket ShardSortKey = "Bracket"

	// ShardSortImportance orders descending by importance.
	ShardSortImportance ShardSortKey = "Importance"
)

// ShardingConfig partitions the working set across concurrent editing
// sessions so several operators can work on disjoint slices of one draw.
type ShardingConfig struct {
	// SplitCount is the number of concurrent editing partitions (>= 1).
	SplitCount int `yaml:"splitCount" json:"split"`

	// Mode selects contiguous or interleaved distribution.
	Mode DistributionMode `yaml:"distributionMode" json:"mix"`

	// SortKey selects the pre-shard ordering.
	SortKey ShardSortKey `yaml:"sortKey" json:"sort"`

	// LocalIndex is the partition this session views, or nil to view the
	// whole working set. Must be in [0, SplitCount) when set.
	LocalIndex *int `yaml:"localIndex" json:"index"`
}

// Validate checks the sharding invariants.
func (c ShardingConfig) Validate() error {
	if c.LocalIndex == nil && c.SplitCount == 0 {
		return nil // sharding disabled
	}
	if c.SplitCount < 1 {
		return fmt.Errorf("splitCount must be >= 1, got %d", c.SplitCount)
	}
	switch c.Mode {
	case DistributionContiguous, DistributionInterleaved, "":
	default:
		return fmt.Errorf("unknown distribution mode %q", c.Mode)
	}
	switch c.SortKey {
	case ShardSortBracket, ShardSortImportance, "":
	default:
		return fmt.Errorf("unknown shard sort key %q", c.SortKey)
	}
	if c.LocalIndex != nil && (*c.LocalIndex < 0 || *c.LocalIndex >= c.SplitCount) {
		return fmt.Errorf("localIndex %d out of range [0, %d)", *c.LocalIndex, c.SplitCount)
	}

	return nil
}
