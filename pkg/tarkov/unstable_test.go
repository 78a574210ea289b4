package tarkov

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnstable(t *testing.T) {
	var v struct {
		A Unstable `json:"a"`
		B Unstable `json:"b"`
		C Unstable `json:"c"`
		D Unstable `json:"d"`
		E Unstable `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":2,"b":"Default","c":"17","d":null,"e":{"x":1}}`), &v))

	n, ok := v.A.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(2), n)
	s, ok := v.A.Text()
	assert.True(t, ok)
	assert.Equal(t, "2", s)

	s, ok = v.B.Text()
	assert.True(t, ok)
	assert.Equal(t, "Default", s)
	_, ok = v.B.Int()
	assert.False(t, ok)

	n, ok = v.C.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(17), n)

	assert.True(t, v.D.IsNull())
	_, ok = v.D.Text()
	assert.False(t, ok)

	_, ok = v.E.Text()
	assert.False(t, ok)
	var obj map[string]int
	require.NoError(t, v.E.Decode(&obj))
	assert.Equal(t, 1, obj["x"])
}

func TestUnstable_Absent(t *testing.T) {
	var v struct {
		A Unstable `json:"a"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))

	assert.True(t, v.A.IsNull())
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null}`, string(out))
}

func TestUnstable_RoundTripKeepsRaw(t *testing.T) {
	var v struct {
		A Unstable `json:"a"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"Horizontal"}`), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"Horizontal"}`, string(out))
	assert.Equal(t, `"Horizontal"`, string(v.A.Raw()))
}

func TestItemGridLocation(t *testing.T) {
	var items []Item
	require.NoError(t, json.Unmarshal([]byte(`[
		{"_id":"a","_tpl":"t","location":{"x":3,"y":1,"r":"Horizontal","isSearched":true}},
		{"_id":"b","_tpl":"t","location":0},
		{"_id":"c","_tpl":"t"}
	]`), &items))

	loc, ok := items[0].GridLocation()
	require.True(t, ok)
	assert.Equal(t, int64(3), loc.X)
	assert.Equal(t, int64(1), loc.Y)
	r, _ := loc.R.Text()
	assert.Equal(t, "Horizontal", r)
	require.NotNil(t, loc.IsSearched)
	assert.True(t, *loc.IsSearched)

	_, ok = items[1].GridLocation()
	assert.False(t, ok)
	idx, ok := items[1].Location.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(0), idx)

	_, ok = items[2].GridLocation()
	assert.False(t, ok)
}
