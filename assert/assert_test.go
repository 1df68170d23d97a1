package assert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartland/algorithms/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("passes silently", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.True(true)
			assert.True(true, "unused message")
		})
	})

	t.Run("panics with default message", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.True(false)
		})
	})

	t.Run("panics with formatted message", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "expected 3, got 4", func() {
			assert.True(false, "expected %d, got %d", 3, 4)
		})
	})

	t.Run("panics with non-string args", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed: [42]", func() {
			assert.True(false, 42)
		})
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.False(false)
	})

	require.Panics(t, func() {
		assert.False(true, "should not be true")
	})
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.NotNil(42)
	})

	require.Panics(t, func() {
		assert.NotNil(nil)
	})
}

func TestUnreachable(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "walked off the end of node 7", func() {
		assert.Unreachable("walked off the end of node %d", 7)
	})
}
