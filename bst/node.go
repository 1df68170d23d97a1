package bst

import (
	"fmt"
	"strings"

	"github.com/cartland/algorithms/sortable"
)

// Node is a single node of a binary search tree. Each node owns its
// children outright; the structure is a tree, never a DAG, so no parent or
// shared references are kept.
type Node[T sortable.Sortable[T]] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the payload stored at this node.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// String renders the subtree rooted at this node for the command line.
// The right subtree appears above the node and the left subtree below it,
// with "/" and "\" marking the branches:
//
//	  -3
//	 /
//	-2
//	 \
//	  -1
//
// The rendering is a diagnostic convenience, not a data format.
func (n *Node[T]) String() string {
	var sb strings.Builder

	n.render(&sb, 0)

	return sb.String()
}

// render writes the subtree into sb, indenting this node by the given
// number of spaces and its children by two more.
func (n *Node[T]) render(sb *strings.Builder, indent int) {
	pad := strings.Repeat(" ", indent)

	if n.right != nil {
		n.right.render(sb, indent+2)
		sb.WriteString("\n")
		sb.WriteString(pad)
		sb.WriteString(" /\n")
	}

	sb.WriteString(pad)
	fmt.Fprintf(sb, "-%v", n.value)

	if n.left != nil {
		sb.WriteString("\n")
		sb.WriteString(pad)
		sb.WriteString(" \\\n")
		n.left.render(sb, indent+2)
	}
}
