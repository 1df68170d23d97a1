// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/cartland/algorithms/compare"
)

// Sortable combines equality with a strict ordering. Types used as payloads
// in the bst, heap and sorters packages must implement it.
//
// Implementations must form a total order consistent with Equals: for any
// two values exactly one of a.LessThan(b), b.LessThan(a) or a.Equals(b)
// holds. The tree and heap packages treat a violation of this contract as
// an internal defect rather than a recoverable condition.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
