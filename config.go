package tabbycat

import (
	"fmt"

	"github.com/TabbycatDebate/tabbycat/types"
)

// Config is the configuration for the Store.
type Config struct {
	// DefaultSortKey is the display sort applied when the bootstrap
	// payload is loaded. Defaults to room_rank, matching the ordering of
	// the draw page the operator arrives from.
	DefaultSortKey types.SortKey `yaml:"defaultSortKey"`

	// Sharding is the initial sharding configuration. The zero value
	// leaves sharding disabled (every unit visible).
	Sharding types.ShardingConfig `yaml:"sharding"`
}

// DefaultConfig returns a configuration with defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.SetDefaults()

	return cfg
}

// SetDefaults fills unset fields with their default values.
func (c *Config) SetDefaults() {
	if c.DefaultSortKey == "" {
		c.DefaultSortKey = types.SortRoomRank
	}
	if c.Sharding.Mode == "" {
		c.Sharding.Mode = types.DistributionContiguous
	}
	if c.Sharding.SortKey == "" {
		c.Sharding.SortKey = types.ShardSortBracket
	}
}

// Validate checks the configuration. Call SetDefaults first; a zero-value
// sort key is rejected here.
func (c *Config) Validate() error {
	switch c.DefaultSortKey {
	case types.SortBracket, types.SortRoomRank, types.SortImportance, types.SortLiveness:
	default:
		return fmt.Errorf("%w: defaultSortKey %q", ErrInvalidConfig, c.DefaultSortKey)
	}
	if err := c.Sharding.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
