package zero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartland/algorithms/zero"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Equal(t, "", zero.Value[string]())
	assert.Nil(t, zero.Value[*int]())
	assert.Nil(t, zero.Value[[]int]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, zero.IsZero(0))
	assert.False(t, zero.IsZero(42))
	assert.True(t, zero.IsZero(""))
	assert.False(t, zero.IsZero("hello"))
	assert.True(t, zero.IsZero[*int](nil))

	type pair struct{ A, B int }

	assert.True(t, zero.IsZero(pair{}))
	assert.False(t, zero.IsZero(pair{A: 1}))
}
