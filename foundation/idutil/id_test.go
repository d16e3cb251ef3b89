package idutil

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticket struct{}

func TestNew(t *testing.T) {
	id, err := New[ticket]()
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Len(t, id.String(), 36)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestParse(t *testing.T) {
	original, err := New[ticket]()
	require.NoError(t, err)

	parsed, err := Parse[ticket](original.String())
	require.NoError(t, err)
	assert.Equal(t, original, parsed)

	_, err = Parse[ticket]("not-a-uuid")
	assert.Error(t, err)
}

func TestZero(t *testing.T) {
	var id ID[ticket]
	assert.True(t, id.IsZero())
	assert.Equal(t, "", id.String())
}

func TestJSON(t *testing.T) {
	type payload struct {
		ID ID[ticket] `json:"id"`
	}

	id, err := New[ticket]()
	require.NoError(t, err)

	b, err := json.Marshal(payload{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, string(b))

	var back payload
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, id, back.ID)

	b, err = json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":""}`, string(b))

	require.NoError(t, json.Unmarshal([]byte(`{"id":""}`), &back))
	assert.True(t, back.ID.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &back))
}
