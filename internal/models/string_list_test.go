package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_NilRendersEmptyArray(t *testing.T) {
	var l StringList

	data, err := json.Marshal(struct {
		Items StringList `json:"items"`
	}{Items: l})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(data))

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_String(t *testing.T) {
	assert.Equal(t, `["meditate","run & swim"]`, StringList{"meditate", "run & swim"}.String())
	assert.Equal(t, "[]", StringList{}.String())
}

func TestStringList_Scan(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(`["a","b"]`))
		assert.Equal(t, StringList{"a", "b"}, l)
	})

	t.Run("Bytes", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan([]byte(`["x"]`)))
		assert.Equal(t, StringList{"x"}, l)
	})

	t.Run("NullAndEmpty", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(nil))
		assert.NotNil(t, l)
		assert.Empty(t, l)

		require.NoError(t, l.Scan(""))
		assert.NotNil(t, l)

		require.NoError(t, l.Scan("null"))
		assert.NotNil(t, l)
		assert.Empty(t, l)
	})

	t.Run("Malformed", func(t *testing.T) {
		var l StringList
		assert.Error(t, l.Scan(`{"not":"a list"}`))
		assert.Error(t, l.Scan(42))
	})
}
