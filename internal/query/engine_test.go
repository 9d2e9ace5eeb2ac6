package query

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(8)
	require.NoError(t, err)
	return e
}

func decode(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestEngine_Run_SingleResult(t *testing.T) {
	e := newEngine(t)
	input := decode(t, `{"total": 12, "items": [{"nickName": "Alice"}]}`)

	got, err := e.Run(context.Background(), ".total", input)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestEngine_Run_MultipleResults(t *testing.T) {
	e := newEngine(t)
	input := decode(t, `[{"nickName": "Alice"}, {"nickName": "Bob"}]`)

	got, err := e.Run(context.Background(), ".[].nickName", input)
	require.NoError(t, err)
	assert.Equal(t, []any{"Alice", "Bob"}, got)
}

func TestEngine_Run_NoResults(t *testing.T) {
	e := newEngine(t)

	got, err := e.Run(context.Background(), "empty", decode(t, `{}`))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEngine_Run_Arithmetic(t *testing.T) {
	e := newEngine(t)
	input := decode(t, `{"ratio": 0.25, "count": 3}`)

	got, err := e.Run(context.Background(), ".ratio * .count", input)
	require.NoError(t, err)
	assert.Equal(t, 0.75, got)
}

func TestEngine_Run_RuntimeErrorHint(t *testing.T) {
	e := newEngine(t)

	_, err := e.Run(context.Background(), ".missing[]", decode(t, `{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot iterate over: null")
	assert.Contains(t, err.Error(), "the path may not exist")
}

func TestEngine_Run_InvalidExpression(t *testing.T) {
	e := newEngine(t)

	_, err := e.Run(context.Background(), ".[", decode(t, `{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq expression")
}

func TestEngine_Run_BinaryInput(t *testing.T) {
	e := newEngine(t)

	_, err := e.Run(context.Background(), ".", []byte("<html>"))
	assert.ErrorIs(t, err, ErrBinaryInput)
}

func TestEngine_CachesPrograms(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.Validate(".a"))
	require.NoError(t, e.Validate(".a"))
	require.NoError(t, e.Validate(".b"))
	assert.Equal(t, 2, e.programs.Len())
}

func TestEngine_Run_IntegersBeyondInt64KeepPrecision(t *testing.T) {
	e := newEngine(t)
	input := decode(t, `{"id": 123456789012345678901234567890}`)

	got, err := e.Run(context.Background(), ".id | tostring", input)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", got)

	got, err = e.Run(context.Background(), ".id", input)
	require.NoError(t, err)
	n, ok := got.(*big.Int)
	require.True(t, ok, "expected *big.Int, got %T", got)
	assert.Equal(t, "123456789012345678901234567890", n.String())
}

func TestNormalize_DoesNotMutate(t *testing.T) {
	in := map[string]any{"n": json.Number("7"), "list": []any{json.Number("1.5")}}

	out := normalize(in)
	assert.Equal(t, map[string]any{"n": 7, "list": []any{1.5}}, out)
	assert.Equal(t, json.Number("7"), in["n"])
}
