// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as payloads in ordered data
// structures.
//
// # Overview
//
// The package defines the [Sortable] interface and ready-to-use
// implementations for common primitive types: [Int], [Byte], [String] and
// [Natural]. These types are designed to work with the ordered structures in
// this module (see [github.com/cartland/algorithms/bst.New] and
// [github.com/cartland/algorithms/heap.NewMin]) as well as the sorting
// strategies in [github.com/cartland/algorithms/sorters].
//
// The Sortable interface extends [github.com/cartland/algorithms/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Creating Custom Sortable Types
//
// To use your own type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// LessThan and Equals must together form a total order; the bst and heap
// packages treat inputs that break that contract as internal defects.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently safe
// to read concurrently. The data structures that hold them are not; callers
// embedding them in a concurrent context must serialize access externally.
package sortable
