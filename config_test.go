package tabbycat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/TabbycatDebate/tabbycat/types"
)

func TestConfigSetDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	require.Equal(t, types.SortRoomRank, cfg.DefaultSortKey)
	require.Equal(t, types.DistributionContiguous, cfg.Sharding.Mode)
	require.Equal(t, types.ShardSortBracket, cfg.Sharding.SortKey)
	require.Nil(t, cfg.Sharding.LocalIndex)
}

func TestConfigValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("BadSortKey", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DefaultSortKey = "alphabetical"
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("BadSharding", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sharding.SplitCount = 3
		cfg.Sharding.LocalIndex = intPtr(-1)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("BadDistributionMode", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Sharding.SplitCount = 2
		cfg.Sharding.Mode = "Shuffled"
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfigYAML(t *testing.T) {
	raw := `
defaultSortKey: importance
sharding:
  splitCount: 3
  distributionMode: Interleaved
  sortKey: Importance
  localIndex: 2
`

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())

	require.Equal(t, types.SortImportance, cfg.DefaultSortKey)
	require.Equal(t, 3, cfg.Sharding.SplitCount)
	require.Equal(t, types.DistributionInterleaved, cfg.Sharding.Mode)
	require.Equal(t, types.ShardSortImportance, cfg.Sharding.SortKey)
	require.NotNil(t, cfg.Sharding.LocalIndex)
	require.Equal(t, 2, *cfg.Sharding.LocalIndex)
}
