package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatchMarshalJSON(t *testing.T) {
	p := Patch{ID: 71, Fields: map[string]any{"importance": float64(2)}}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":71,"importance":2}`, string(data))
}

func TestPatchUnmarshalJSON(t *testing.T) {
	t.Run("FlatObject", func(t *testing.T) {
		var p Patch
		err := json.Unmarshal([]byte(`{"id":71,"importance":2,"room_rank":5}`), &p)
		require.NoError(t, err)
		require.Equal(t, int64(71), p.ID)
		require.Equal(t, float64(2), p.Fields["importance"])
		require.Equal(t, float64(5), p.Fields["room_rank"])
		require.NotContains(t, p.Fields, "id")
	})

	t.Run("MissingID", func(t *testing.T) {
		var p Patch
		err := json.Unmarshal([]byte(`{"importance":2}`), &p)
		require.Error(t, err)
	})
}

func TestEnvelopeMarshalJSON(t *testing.T) {
	t.Run("AttributeGroups", func(t *testing.T) {
		env := &Envelope{
			ComponentID: 1407,
			Updates: map[string][]Patch{
				"importance": {{ID: 71, Fields: map[string]any{"importance": float64(2)}}},
			},
		}

		data, err := json.Marshal(env)
		require.NoError(t, err)
		require.JSONEq(t,
			`{"importance":[{"id":71,"importance":2}],"componentID":1407}`,
			string(data))
	})

	t.Run("Units", func(t *testing.T) {
		env := &Envelope{
			ComponentID: 5711,
			Units:       []Patch{{ID: 72, Fields: map[string]any{"importance": float64(1)}}},
		}

		data, err := json.Marshal(env)
		require.NoError(t, err)
		require.JSONEq(t,
			`{"debatesOrPanels":[{"id":72,"importance":1}],"componentID":5711}`,
			string(data))
	})

	t.Run("Message", func(t *testing.T) {
		env := &Envelope{
			ComponentID: 9,
			Message:     &Message{Type: "failure", Text: "allocation failed"},
		}

		data, err := json.Marshal(env)
		require.NoError(t, err)
		require.JSONEq(t,
			`{"message":{"type":"failure","text":"allocation failed"},"componentID":9}`,
			string(data))
	})
}

func TestEnvelopeUnmarshalJSON(t *testing.T) {
	t.Run("DynamicAttributeKeys", func(t *testing.T) {
		raw := `{
			"importance": [{"id": 71, "importance": 2}],
			"adjudicators": [{"id": 72, "adjudicators": {"chair": [3]}}],
			"componentID": 1407
		}`

		var env Envelope
		require.NoError(t, json.Unmarshal([]byte(raw), &env))
		require.Equal(t, int64(1407), env.ComponentID)
		require.Len(t, env.Updates, 2)
		require.Equal(t, int64(71), env.Updates["importance"][0].ID)
		require.Equal(t, int64(72), env.Updates["adjudicators"][0].ID)
		require.Nil(t, env.Units)
		require.Nil(t, env.Message)
	})

	t.Run("UnitsAndMessage", func(t *testing.T) {
		raw := `{
			"componentID": 5711,
			"debatesOrPanels": [{"id": 72, "importance": 2}],
			"message": {"type": "success", "text": "Regenerated panels"}
		}`

		var env Envelope
		require.NoError(t, json.Unmarshal([]byte(raw), &env))
		require.Equal(t, int64(5711), env.ComponentID)
		require.Len(t, env.Units, 1)
		require.Equal(t, int64(72), env.Units[0].ID)
		require.NotNil(t, env.Message)
		require.Equal(t, "success", env.Message.Type)
		require.Equal(t, "Regenerated panels", env.Message.Text)
		require.Empty(t, env.Updates)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		env := &Envelope{
			ComponentID: 42,
			Updates: map[string][]Patch{
				"room_rank": {{ID: 5, Fields: map[string]any{"room_rank": float64(3)}}},
			},
		}

		data, err := json.Marshal(env)
		require.NoError(t, err)

		var got Envelope
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, env.ComponentID, got.ComponentID)
		require.Equal(t, env.Updates, got.Updates)
	})

	t.Run("MalformedGroup", func(t *testing.T) {
		var env Envelope
		err := json.Unmarshal([]byte(`{"importance":"nope","componentID":1}`), &env)
		require.Error(t, err)
	})
}
