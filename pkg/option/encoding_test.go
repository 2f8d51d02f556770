package option

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

func Test_ToMap(t *testing.T) {
	v := "x"
	assert.Equal(t, map[string]any{"has_value": true, "value": "x"}, FromNullable(&v).ToMap())
	assert.Equal(t, map[string]any{"has_value": false, "value": nil}, FromNullable[string](nil).ToMap())
}

func Test_JSON(t *testing.T) {
	b, err := json.Marshal(Some(5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"has_value":true,"value":5}`, string(b))

	b, err = json.Marshal(None[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"has_value":false,"value":null}`, string(b))

	type user struct {
		Nickname Option[string] `json:"nickname"`
	}
	b, err = json.Marshal(user{Nickname: Some("neo")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nickname":{"has_value":true,"value":"neo"}}`, string(b))

	var o Option[int]
	require.NoError(t, json.Unmarshal([]byte(`{"has_value":true,"value":7}`), &o))
	assert.Equal(t, Some(7), o)

	require.NoError(t, json.Unmarshal([]byte(`{"has_value":false,"value":null}`), &o))
	assert.Equal(t, None[int](), o)

	err = json.Unmarshal([]byte(`{"value":7}`), &o)
	assert.True(t, Error.Has(err))
}

func Test_YAML(t *testing.T) {
	b, err := yaml.Marshal(Some("hi"))
	require.NoError(t, err)
	assert.Equal(t, "has_value: true\nvalue: hi\n", string(b))

	b, err = yaml.Marshal(None[string]())
	require.NoError(t, err)
	assert.Equal(t, "has_value: false\nvalue: null\n", string(b))

	var o Option[string]
	require.NoError(t, yaml.Unmarshal([]byte("has_value: true\nvalue: hi\n"), &o))
	assert.Equal(t, Some("hi"), o)

	err = yaml.Unmarshal([]byte("value: hi\n"), &o)
	assert.Error(t, err)
}

func Test_MarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, Some(5).MarshalLogObject(enc))
	assert.Equal(t, map[string]interface{}{"has_value": true, "value": 5}, enc.Fields)

	enc = zapcore.NewMapObjectEncoder()
	require.NoError(t, None[int]().MarshalLogObject(enc))
	assert.Equal(t, map[string]interface{}{"has_value": false}, enc.Fields)
}
