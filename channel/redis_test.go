package channel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	tabtest "github.com/TabbycatDebate/tabbycat/testing"
	"github.com/TabbycatDebate/tabbycat/types"
)

func TestNewRedis(t *testing.T) {
	t.Run("NilClient", func(t *testing.T) {
		_, err := NewRedis(nil, Config{Subject: "test"})
		require.ErrorIs(t, err, ErrClientRequired)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		_, client := tabtest.StartMiniredis(t)
		_, err := NewRedis(client, Config{})
		require.ErrorIs(t, err, ErrSubjectRequired)
	})
}

func TestRedisLifecycle(t *testing.T) {
	_, client := tabtest.StartMiniredis(t)

	ch, err := NewRedis(client, Config{Subject: "alloc.test"},
		WithLogger(tabtest.NewTestLogger(t)))
	require.NoError(t, err)

	require.ErrorIs(t, ch.Close(), ErrNotStarted)

	require.NoError(t, ch.Start(t.Context()))
	require.ErrorIs(t, ch.Start(t.Context()), ErrAlreadyStarted)

	require.NoError(t, ch.Close())
	require.ErrorIs(t, ch.Close(), ErrNotStarted)
}

func TestRedisSendReceive(t *testing.T) {
	_, client := tabtest.StartMiniredis(t)

	ch, err := NewRedis(client, Config{Subject: "alloc.round-3"})
	require.NoError(t, err)

	var got atomic.Pointer[types.Envelope]
	ch.OnReceive(func(env *types.Envelope) { got.Store(env) })
	require.NoError(t, ch.Start(t.Context()))
	t.Cleanup(func() { _ = ch.Close() })

	env := &types.Envelope{
		ComponentID: 5711,
		Units:       []types.Patch{{ID: 72, Fields: map[string]any{"importance": float64(1)}}},
	}
	require.NoError(t, ch.Send(t.Context(), env))

	require.Eventually(t, func() bool {
		return got.Load() != nil
	}, 5*time.Second, 10*time.Millisecond)

	received := got.Load()
	require.Equal(t, int64(5711), received.ComponentID)
	require.Len(t, received.Units, 1)
	require.Equal(t, int64(72), received.Units[0].ID)
}
