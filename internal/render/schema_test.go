package render

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSchema_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"bool", true, "boolean"},
		{"json integer", json.Number("12"), "integer"},
		{"json float", json.Number("1.5"), "number"},
		{"json integer beyond int64", json.Number("123456789012345678901234567890"), "integer"},
		{"big int", new(big.Int).Lsh(big.NewInt(1), 70), "integer"},
		{"float integral", float64(3), "integer"},
		{"string", "hi", "string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferSchema(tt.in).Type)
		})
	}
}

func TestInferSchema_SessionList(t *testing.T) {
	sessions := []any{
		map[string]any{"userName": "wxid_a", "nickName": "Alice", "nOrder": json.Number("3")},
		map[string]any{"userName": "123@chatroom", "nickName": nil, "nOrder": json.Number("4.5")},
	}

	s := InferSchema(sessions)
	require.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)

	item := s.Items
	assert.Equal(t, "object", item.Type)
	assert.Equal(t, []string{"nOrder", "userName"}, item.Required)

	order, ok := item.Properties.Get("nOrder")
	require.True(t, ok)
	assert.Equal(t, "number", order.Type)

	nick, ok := item.Properties.Get("nickName")
	require.True(t, ok)
	assert.Len(t, nick.AnyOf, 2)
}

func TestInferSchema_OptionalProperty(t *testing.T) {
	s := InferSchema([]any{
		map[string]any{"a": "x"},
		map[string]any{"a": "y", "b": true},
	})

	assert.Equal(t, []string{"a"}, s.Items.Required)
	_, ok := s.Items.Properties.Get("b")
	assert.True(t, ok)
}

func TestInferSchema_EmptyArray(t *testing.T) {
	s := InferSchema([]any{})
	assert.Equal(t, "array", s.Type)
	assert.Nil(t, s.Items)
}
