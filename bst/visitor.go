package bst

import (
	"iter"

	"github.com/cartland/algorithms/sortable"
)

// visitor defines the interface for tree traversal using the visitor pattern.
// Implementations should return true to continue traversal, false to stop.
type visitor[T sortable.Sortable[T]] interface {
	Visit(node *Node[T]) bool
}

// countingVisitor counts the nodes of the tree during an in-order traversal.
type countingVisitor[T sortable.Sortable[T]] struct {
	Count int
}

// Visit recursively visits the left subtree, counts the node, then visits
// the right subtree.
func (v *countingVisitor[T]) Visit(node *Node[T]) bool {
	if node == nil {
		return true
	}

	if !v.Visit(node.left) {
		return false
	}

	v.Count++

	return v.Visit(node.right)
}

// seqVisitor yields node values to an iterator function during an in-order
// traversal. It enables range-over-func iteration support.
type seqVisitor[T sortable.Sortable[T]] struct {
	yield func(T) bool
}

// Visit yields each value in order, stopping early if the yield function
// returns false.
func (s *seqVisitor[T]) Visit(node *Node[T]) bool {
	if node == nil {
		return true
	}

	if !s.Visit(node.left) {
		return false
	}

	if !s.yield(node.value) {
		return false
	}

	return s.Visit(node.right)
}

// Seq returns an iterator that yields values in sorted order (in-order
// traversal): for v := range tree.Seq() { ... }
// The tree must not be mutated during iteration.
func (t *Tree[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.walk(&seqVisitor[T]{yield: yield})
	}
}

// Size returns the number of nodes in the tree.
// It performs a full traversal using a counting visitor, so it costs O(n).
func (t *Tree[T]) Size() int {
	vis := &countingVisitor[T]{}
	t.walk(vis)

	return vis.Count
}

// walk runs the visitor over the whole tree.
func (t *Tree[T]) walk(v visitor[T]) {
	v.Visit(t.root)
}
