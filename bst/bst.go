// Package bst implements an unbalanced binary search tree with insert,
// exact-match find, delete-by-value and an explicit, on-demand rebalancing
// pass built from single rotations.
//
// The tree maintains the search property but no balance invariant: a
// degenerate insertion order produces a degenerate tree until Balance is
// called. Balance is a depth-reduction heuristic, not a self-balancing
// guarantee; see Tree.Balance for its limits.
//
// Instances are not safe for concurrent use. Callers embedding a Tree in a
// concurrent context must serialize access, holding one exclusive lock per
// instance for the duration of each operation.
package bst

import (
	"github.com/cartland/algorithms/assert"
	"github.com/cartland/algorithms/sortable"
)

// Tree is a binary search tree over a single totally-ordered payload type.
// For every node, all values in the left subtree are less than or equal to
// the node's value and all values in the right subtree are greater than or
// equal to it. Duplicate values are allowed and descend to the left on
// insertion.
//
// The zero value is an empty tree ready for use; New is provided for
// symmetry with the rest of the module.
type Tree[T sortable.Sortable[T]] struct {
	root *Node[T]
}

// New creates a new empty binary search tree.
func New[T sortable.Sortable[T]]() *Tree[T] {
	return &Tree[T]{}
}

// Insert adds value to the tree. Equal values descend to the left, so
// inserting a duplicate grows the left subtree of the existing node.
// Time complexity: O(d) where d is the current depth of the tree.
func (t *Tree[T]) Insert(value T) {
	t.root = insertNode(t.root, &Node[T]{value: value})
}

// insertNode places newNode somewhere in the subtree rooted at root and
// returns the (possibly changed) subtree root. Either argument may be nil.
//
// The walk descends right when the current value is less than the new one
// and left otherwise, attaching the node at the first empty slot. For a
// well-formed tree the walk always terminates by attaching; falling out of
// the loop means the structure or the ordering contract is corrupt.
func insertNode[T sortable.Sortable[T]](root, newNode *Node[T]) *Node[T] {
	if newNode == nil {
		return root
	}

	if root == nil {
		return newNode
	}

	for node := root; node != nil; {
		if node.value.LessThan(newNode.value) {
			if node.right == nil {
				node.right = newNode

				return root
			}

			node = node.right
		} else {
			if node.left == nil {
				node.left = newNode

				return root
			}

			node = node.left
		}
	}

	assert.Unreachable("bst: insert walk terminated without placing %v", newNode.value)

	return root
}

// Find returns the node whose value matches the given value, or false when
// no node matches. Absence is a normal outcome, not an error.
// Time complexity: O(d).
func (t *Tree[T]) Find(value T) (*Node[T], bool) {
	for node := t.root; node != nil; {
		switch {
		case node.value.Equals(value):
			return node, true
		case node.value.LessThan(value):
			node = node.right
		case value.LessThan(node.value):
			node = node.left
		default:
			// Unequal values where neither orders before the other mean
			// the payload type does not form a total order.
			assert.Unreachable("bst: %v and %v are unequal but unordered", node.value, value)
		}
	}

	return nil, false
}

// Delete removes a single node matching value. The tree is unchanged when
// the value is absent.
//
// The matched node's subtrees are detached and re-inserted (right first,
// then left) under the deleted node's parent, or as a fresh root when the
// deleted node was the root. Re-insertion is deliberately simple and may
// increase local depth: delete does not preserve balance.
//
// Which parent link is cleared is decided by comparing the target value
// against the parent's value, not by node identity. With duplicate values
// this can clear a different link than the one to the matched node; the
// behavior is kept as-is.
func (t *Tree[T]) Delete(value T) {
	t.root = deleteValue(t.root, value)
}

// deleteValue removes one node matching value from the subtree rooted at
// root and returns the modified root. The original root is returned when
// the value is not found.
func deleteValue[T sortable.Sortable[T]](root *Node[T], value T) *Node[T] {
	if root == nil {
		return nil
	}

	var parent *Node[T]

	node := root
	for !node.value.Equals(value) {
		switch {
		case node.value.LessThan(value):
			parent = node
			node = node.right
		case value.LessThan(node.value):
			parent = node
			node = node.left
		default:
			assert.Unreachable("bst: %v and %v are unequal but unordered", node.value, value)
		}

		if node == nil {
			// The tree does not contain the value.
			return root
		}
	}

	left, right := node.left, node.right

	if parent != nil {
		if value.LessThan(parent.value) {
			parent.left = nil
		}

		if parent.value.LessThan(value) {
			parent.right = nil
		}
	}

	nodeIsRoot := parent == nil

	parent = insertNode(parent, right)
	parent = insertNode(parent, left)

	if nodeIsRoot {
		root = parent
	}

	return root
}

// Balance reduces the depth of the tree where single rotations help,
// preserving the search property. It processes the tree bottom-up: each
// node's children are balanced first, then the node rotates toward its
// shallow side as long as one subtree is at least two levels deeper and
// the deep subtree's outer branch is at least as deep as its inner branch.
//
// A node whose inner branch is the deeper one is left unbalanced at that
// level; rotating it would only relocate the imbalance. This is
// single-rotation AVL-style balancing, not full tree reconstruction.
//
// Depths are recomputed from scratch on every check, so a full pass costs
// O(n*d) rather than O(n).
func (t *Tree[T]) Balance() {
	t.root = balanceNode(t.root)
}

// balanceNode balances the subtree rooted at node and returns its new root.
func balanceNode[T sortable.Sortable[T]](node *Node[T]) *Node[T] {
	if node == nil {
		return nil
	}

	for balancing := true; balancing; {
		balancing = false

		node.left = balanceNode(node.left)
		node.right = balanceNode(node.right)

		leftDepth := nodeDepth(node.left)
		rightDepth := nodeDepth(node.right)

		switch {
		case leftDepth >= rightDepth+2:
			if nodeDepth(node.left.right) <= nodeDepth(node.left.left) {
				node = rotateRight(node)
				balancing = true
			}
		case rightDepth >= leftDepth+2:
			if nodeDepth(node.right.left) <= nodeDepth(node.right.right) {
				node = rotateLeft(node)
				balancing = true
			}
		}
	}

	return node
}

// rotateLeft makes node's right child the root of the subtree. The new
// root's former left child is reattached as node's right child, and node
// becomes the new root's left child. Rotating a node without a right
// child is a no-op.
//
//	  x                 y
//	 / \               / \
//	a   y      =>     x   c
//	   / \           / \
//	  b   c         a   b
func rotateLeft[T sortable.Sortable[T]](node *Node[T]) *Node[T] {
	if node == nil || node.right == nil {
		return node
	}

	newRoot := node.right
	orphan := newRoot.left
	newRoot.left = node
	node.right = orphan

	return newRoot
}

// rotateRight is the mirror image of rotateLeft: the left child becomes
// the subtree root. Rotating a node without a left child is a no-op.
//
//	    y             x
//	   / \           / \
//	  x   c    =>   a   y
//	 / \               / \
//	a   b             b   c
func rotateRight[T sortable.Sortable[T]](node *Node[T]) *Node[T] {
	if node == nil || node.left == nil {
		return node
	}

	newRoot := node.left
	orphan := newRoot.right
	newRoot.right = node
	node.left = orphan

	return newRoot
}

// Depth returns the depth of the tree: 0 for an empty tree, 1 for a single
// node, otherwise 1 plus the deeper of the two subtrees. The value is
// recomputed recursively on every call; nothing is cached across
// structural changes.
func (t *Tree[T]) Depth() int {
	return nodeDepth(t.root)
}

// nodeDepth returns the depth of the subtree rooted at node.
func nodeDepth[T sortable.Sortable[T]](node *Node[T]) int {
	if node == nil {
		return 0
	}

	return 1 + max(nodeDepth(node.left), nodeDepth(node.right))
}

// IsValid reports whether the tree satisfies the binary search property.
// Every node must lie within the bounds inherited from its ancestors: the
// minimum bound tightens going right and the maximum bound tightens going
// left. Values equal to a bound are allowed on either side, matching how
// Insert routes duplicates.
func (t *Tree[T]) IsValid() bool {
	return isValidNode(t.root, nil, nil)
}

// isValidNode checks the subtree rooted at node against the inherited
// bounds. A nil bound means that side is unconstrained.
func isValidNode[T sortable.Sortable[T]](node *Node[T], lower, upper *T) bool {
	if node == nil {
		return true
	}

	if lower != nil && node.value.LessThan(*lower) {
		return false
	}

	if upper != nil && (*upper).LessThan(node.value) {
		return false
	}

	if !isValidNode(node.left, lower, &node.value) {
		return false
	}

	return isValidNode(node.right, &node.value, upper)
}

// String renders the tree for the command line. An empty tree renders as
// an empty string. See Node.String for the format.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ""
	}

	return t.root.String()
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}
