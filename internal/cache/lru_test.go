package cache

import (
	"testing"

	"github.com/itchyny/gojq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, expr string) *gojq.Code {
	t.Helper()
	q, err := gojq.Parse(expr)
	require.NoError(t, err)
	code, err := gojq.Compile(q)
	require.NoError(t, err)
	return code
}

func TestProgramCache_PutGet(t *testing.T) {
	c, err := NewProgramCache(4)
	require.NoError(t, err)

	code := compile(t, ".name")
	c.Put(".name", code)

	got, ok := c.Get(".name")
	require.True(t, ok)
	assert.Same(t, code, got)

	_, ok = c.Get(".missing")
	assert.False(t, ok)
}

func TestProgramCache_Evicts(t *testing.T) {
	c, err := NewProgramCache(2)
	require.NoError(t, err)

	c.Put(".a", compile(t, ".a"))
	c.Put(".b", compile(t, ".b"))
	c.Put(".c", compile(t, ".c"))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(".a")
	assert.False(t, ok)
}

func TestNewProgramCache_InvalidSize(t *testing.T) {
	_, err := NewProgramCache(0)
	assert.Error(t, err)
}
