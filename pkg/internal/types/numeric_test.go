package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatAcceptsNumberAndString(t *testing.T) {
	var payload struct {
		Surface *Float `json:"surface"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"surface": 120.5}`), &payload))
	require.NotNil(t, payload.Surface)
	assert.InDelta(t, 120.5, float64(*payload.Surface), 0.001)

	payload.Surface = nil
	require.NoError(t, json.Unmarshal([]byte(`{"surface": "120.5"}`), &payload))
	require.NotNil(t, payload.Surface)
	assert.InDelta(t, 120.5, float64(*payload.Surface), 0.001)

	err := json.Unmarshal([]byte(`{"surface": "12x"}`), &payload)
	require.Error(t, err)
}

func TestIntAcceptsNumberAndString(t *testing.T) {
	var payload struct {
		Rooms *Int `json:"rooms"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"rooms": 3}`), &payload))
	require.NotNil(t, payload.Rooms)
	assert.Equal(t, 3, int(*payload.Rooms))

	payload.Rooms = nil
	require.NoError(t, json.Unmarshal([]byte(`{"rooms": "4"}`), &payload))
	require.NotNil(t, payload.Rooms)
	assert.Equal(t, 4, int(*payload.Rooms))

	// 浮点写法取整
	payload.Rooms = nil
	require.NoError(t, json.Unmarshal([]byte(`{"rooms": "3.0"}`), &payload))
	assert.Equal(t, 3, int(*payload.Rooms))
}

func TestPtrHelpers(t *testing.T) {
	var f *Float
	assert.Nil(t, f.Ptr())

	v := Float(9.5)
	require.NotNil(t, v.Ptr())
	assert.InDelta(t, 9.5, *v.Ptr(), 0.001)

	var i *Int
	assert.Nil(t, i.Ptr())
}

func TestDetailColumnsOnlyNonNil(t *testing.T) {
	surface := Float(80)
	rooms := Int(2)
	p := ApartmentDetailPayload{Surface: &surface, Rooms: &rooms}

	cols := p.Columns()
	assert.Len(t, cols, 2)
	assert.InDelta(t, 80, cols["surface"].(float64), 0.001)
	assert.Equal(t, 2, cols["rooms"].(int))
	assert.True(t, p.HasSurface())

	empty := ApartmentDetailPayload{}
	assert.Empty(t, empty.Columns())
	assert.False(t, empty.HasSurface())
}
