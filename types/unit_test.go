package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestAllocationUnitBracketReadings(t *testing.T) {
	t.Run("SingleBracket", func(t *testing.T) {
		u := &AllocationUnit{Bracket: 7}
		require.False(t, u.HasBracketRange())
		require.Equal(t, float64(7), u.BracketMidpoint())
		require.Equal(t, float64(7), u.BracketSortValue())
	})

	t.Run("BracketRange", func(t *testing.T) {
		u := &AllocationUnit{
			BracketMin: floatPtr(4),
			BracketMax: floatPtr(8),
		}
		require.True(t, u.HasBracketRange())
		require.Equal(t, float64(6), u.BracketMidpoint())
		require.Equal(t, float64(4), u.BracketSortValue())
	})
}

func TestAllocationUnitApply(t *testing.T) {
	t.Run("KnownFields", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.Apply(map[string]any{
			"importance": float64(2),
			"room_rank":  float64(5),
			"bracket":    float64(3),
		})
		require.Equal(t, float64(2), u.Importance)
		require.Equal(t, float64(5), u.RoomRank)
		require.Equal(t, float64(3), u.Bracket)
	})

	t.Run("QuotedImportance", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.Apply(map[string]any{"importance": "2"})
		require.Equal(t, float64(2), u.Importance)
	})

	t.Run("IDNeverChanges", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.Apply(map[string]any{"id": float64(99)})
		require.Equal(t, int64(71), u.ID)
	})

	t.Run("TeamsInvalidatesLiveness", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.SetLiveness(3)

		u.Apply(map[string]any{
			"teams": map[string]any{
				"aff": map[string]any{"id": float64(12), "points": float64(6)},
			},
		})

		_, valid := u.Liveness()
		require.False(t, valid)
		require.NotNil(t, u.Teams["aff"])
		require.Equal(t, int64(12), u.Teams["aff"].ID)
		require.Equal(t, float64(6), u.Teams["aff"].Points)
	})

	t.Run("Adjudicators", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.Apply(map[string]any{
			"adjudicators": map[string]any{
				"chair":      []any{float64(3)},
				"panellists": []any{float64(4), float64(5)},
			},
		})
		require.Equal(t, []int64{3}, u.Adjudicators["chair"])
		require.Equal(t, []int64{4, 5}, u.Adjudicators["panellists"])
	})

	t.Run("UnknownFieldsGoToExtra", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.Apply(map[string]any{"venue": map[string]any{"id": float64(9)}})
		require.Contains(t, u.Extra, "venue")
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		u := &AllocationUnit{ID: 71}
		u.Apply(map[string]any{"importance": float64(1)})
		u.Apply(map[string]any{"importance": float64(3)})
		require.Equal(t, float64(3), u.Importance)
	})
}

func TestAllocationUnitLivenessCache(t *testing.T) {
	u := &AllocationUnit{ID: 1}

	_, valid := u.Liveness()
	require.False(t, valid)

	u.SetLiveness(2)
	v, valid := u.Liveness()
	require.True(t, valid)
	require.Equal(t, 2, v)

	u.InvalidateLiveness()
	_, valid = u.Liveness()
	require.False(t, valid)
}
