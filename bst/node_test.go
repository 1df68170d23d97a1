package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartland/algorithms/sortable"
)

func TestNode_Accessors(t *testing.T) {
	t.Parallel()

	tree := New[sortable.Int]()
	tree.Insert(sortable.Int(2))
	tree.Insert(sortable.Int(1))
	tree.Insert(sortable.Int(3))

	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, sortable.Int(2), root.Value())

	require.NotNil(t, root.Left())
	assert.Equal(t, sortable.Int(1), root.Left().Value())

	require.NotNil(t, root.Right())
	assert.Equal(t, sortable.Int(3), root.Right().Value())
}

func TestNode_String(t *testing.T) {
	t.Parallel()

	t.Run("single node", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		tree.Insert(sortable.Int(1))

		assert.Equal(t, "-1", tree.String())
	})

	t.Run("right child renders above", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		tree.Insert(sortable.Int(2))
		tree.Insert(sortable.Int(3))

		assert.Equal(t, "  -3\n /\n-2", tree.String())
	})

	t.Run("left child renders below", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		tree.Insert(sortable.Int(2))
		tree.Insert(sortable.Int(1))

		assert.Equal(t, "-2\n \\\n  -1", tree.String())
	})

	t.Run("both children", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		tree.Insert(sortable.Int(2))
		tree.Insert(sortable.Int(1))
		tree.Insert(sortable.Int(3))

		assert.Equal(t, "  -3\n /\n-2\n \\\n  -1", tree.String())
	})

	t.Run("empty tree renders empty", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.Int]()
		assert.Empty(t, tree.String())
	})

	t.Run("string payloads", func(t *testing.T) {
		t.Parallel()

		tree := New[sortable.String]()
		tree.Insert(sortable.String("m"))
		tree.Insert(sortable.String("s"))

		assert.Equal(t, "  -s\n /\n-m", tree.String())
	})
}
