package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysIgnoredWhileClosed(t *testing.T) {
	g := New(testCatalog())
	for _, k := range []Key{KeyEscape, KeyArrowLeft, KeyArrowRight, "Enter"} {
		assert.ErrorIs(t, g.HandleKey(k), ErrClosed, "key %q", k)
		assertClosed(t, g)
	}
}

func TestKeyRouting(t *testing.T) {
	g := New(testCatalog())
	require.NoError(t, g.Open("a"))

	require.NoError(t, g.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, g.Index())

	require.NoError(t, g.HandleKey(KeyArrowLeft))
	require.NoError(t, g.HandleKey(KeyArrowLeft))
	assert.Equal(t, 2, g.Index())

	assert.ErrorIs(t, g.HandleKey("Enter"), ErrUnboundKey)
	assertOpen(t, g, "a", 2)

	require.NoError(t, g.HandleKey(KeyEscape))
	assertClosed(t, g)

	// After Escape the arrows are inert again.
	assert.ErrorIs(t, g.HandleKey(KeyArrowRight), ErrClosed)
	assertClosed(t, g)
}

func TestArrowKeysOnImagelessProject(t *testing.T) {
	g := New(testCatalog())
	require.NoError(t, g.Open("b"))

	assert.ErrorIs(t, g.HandleKey(KeyArrowRight), ErrNoImages)
	assert.ErrorIs(t, g.HandleKey(KeyArrowLeft), ErrNoImages)
	assertOpen(t, g, "b", 0)

	require.NoError(t, g.HandleKey(KeyEscape))
	assertClosed(t, g)
}
