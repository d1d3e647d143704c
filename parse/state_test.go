package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_NextAdvances(t *testing.T) {
	state := NewState([]string{"build", "-v"})

	assert.False(t, state.AtEnd())
	assert.Equal(t, 2, state.Len())

	word, err := state.Next()
	require.NoError(t, err)
	assert.Equal(t, "build", word)

	word, err = state.Next()
	require.NoError(t, err)
	assert.Equal(t, "-v", word)
	assert.True(t, state.AtEnd())
}

func TestState_NextOnExhaustedInput(t *testing.T) {
	state := NewState(nil)

	assert.True(t, state.AtEnd())
	_, err := state.Next()
	assert.ErrorIs(t, err, ErrExhaustedInput)
}

func TestState_PrependIsReturnedNext(t *testing.T) {
	state := NewState([]string{"later"})
	state.Prepend("now")

	word, err := state.Next()
	require.NoError(t, err)
	assert.Equal(t, "now", word, "a prepended token should be consumed before the rest")

	word, err = state.Next()
	require.NoError(t, err)
	assert.Equal(t, "later", word)
}

func TestState_PrependKeepsOrder(t *testing.T) {
	state := NewState(nil)
	state.Prepend("first", "second")

	word, _ := state.Next()
	assert.Equal(t, "first", word)
	word, _ = state.Next()
	assert.Equal(t, "second", word)
}

func TestState_Peek(t *testing.T) {
	state := NewState([]string{"only"})

	word, ok := state.Peek()
	assert.True(t, ok)
	assert.Equal(t, "only", word)
	assert.Equal(t, 1, state.Len(), "peeking should not advance")

	_, _ = state.Next()
	_, ok = state.Peek()
	assert.False(t, ok)
}

func TestSplit(t *testing.T) {
	tokens, err := Split(`build -v --out="dist dir"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"build", "-v", "--out=dist dir"}, tokens)
}
