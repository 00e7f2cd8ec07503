package shard

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {
	t.Run("deals round-robin into bucket order", func(t *testing.T) {
		out := Interleave(intRange(12), 3)

		require.Equal(t, []int{0, 3, 6, 9, 1, 4, 7, 10, 2, 5, 8, 11}, out)
	})

	t.Run("contiguous split after interleave samples evenly", func(t *testing.T) {
		groups := SplitContiguous(Interleave(intRange(12), 3), 3)

		require.Len(t, groups, 3)
		require.Equal(t, []int{0, 3, 6, 9}, groups[0])
		require.Equal(t, []int{1, 4, 7, 10}, groups[1])
		require.Equal(t, []int{2, 5, 8, 11}, groups[2])
	})

	t.Run("is a permutation of the input", func(t *testing.T) {
		for length := 1; length <= 25; length++ {
			for n := 1; n <= 8; n++ {
				out := Interleave(intRange(length), n)
				require.Len(t, out, length, "length=%d n=%d", length, n)

				sorted := append([]int(nil), out...)
				sort.Ints(sorted)
				require.Equal(t, intRange(length), sorted, "length=%d n=%d", length, n)
			}
		}
	})

	t.Run("single bucket copies the input", func(t *testing.T) {
		out := Interleave(intRange(5), 1)

		require.Equal(t, intRange(5), out)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := intRange(10)
		out := Interleave(input, 4)
		out[0] = 99

		require.Equal(t, intRange(10), input)
	})
}
