package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "data object", in: `{"success":true,"data":{"id":"X"}}`, want: `{"id":"X"}`},
		{name: "data array", in: `{"data":[1,2]}`, want: `[1,2]`},
		{name: "data null", in: `{"data":null,"message":"none"}`, want: `null`},
		{name: "no data key", in: `{"id":"X","name":"n"}`, want: `{"id":"X","name":"n"}`},
		{name: "bare array", in: `[{"data":1}]`, want: `[{"data":1}]`},
		{name: "scalar", in: `42`, want: `42`},
		{name: "empty", in: ``, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unwrap(json.RawMessage(tt.in))
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestUnwrapIsIdempotentForBarePayloads(t *testing.T) {
	bare := json.RawMessage(`{"id":"X"}`)
	assert.Equal(t, string(bare), string(Unwrap(Unwrap(bare))))
}

func TestDecode(t *testing.T) {
	type item struct {
		ID string `json:"id"`
	}

	wrapped, err := Decode[[]item](json.RawMessage(`{"success":true,"data":[{"id":"A"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "A"}}, wrapped)

	bare, err := Decode[item](json.RawMessage(`{"id":"B"}`))
	require.NoError(t, err)
	assert.Equal(t, item{ID: "B"}, bare)

	_, err = Decode[[]item](json.RawMessage(`{"id":"C"}`))
	assert.Error(t, err)
}

func TestParseEnvelope(t *testing.T) {
	env := ParseEnvelope(json.RawMessage(`{"success":false,"message":"nope","token":"t","user_id":"U1"}`))

	require.NotNil(t, env.Success)
	assert.False(t, *env.Success)
	assert.Equal(t, "nope", env.Message)
	assert.Equal(t, "t", env.Token)
	assert.Equal(t, "U1", env.UserID)

	assert.Nil(t, ParseEnvelope(json.RawMessage(`[1]`)).Success)
}
