package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewMapMarshalsInInsertionOrder(t *testing.T) {
	m := newViewMap[int]()
	m.Set("March", 3)
	m.Set("January", 1)
	m.Set("February", 2)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"March":3,"January":1,"February":2}`, string(out))
}

func TestViewMapLastWriteWinsKeepsPosition(t *testing.T) {
	m := newViewMap[string]()
	m.Set("March", "first")
	m.Set("April", "only")
	m.Set("March", "second")

	v, ok := m.Get("March")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, []string{"March", "April"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"March":"second","April":"only"}`, string(out))
}

func TestViewMapEmpty(t *testing.T) {
	m := newViewMap[int]()
	assert.Equal(t, 0, m.Len())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	_, ok := m.Get("missing")
	assert.False(t, ok)
}
