// Package sorters provides six comparison-based sorting strategies behind
// a common interface.
//
// Every strategy copies its input and returns a new sorted sequence; the
// input is never mutated. Bubble, Insertion and Merge are stable (equal
// items keep their relative order); Selection, Quick and Heap are not.
// The distinction is part of each strategy's contract and is deliberately
// not papered over.
package sorters

import "github.com/cartland/algorithms/sortable"

// Sorter sorts sequences of T into non-decreasing order.
type Sorter[T sortable.Sortable[T]] interface {
	// Sort returns a sorted copy of data. The input is left unchanged.
	Sort(data []T) []T
}

// IsSorted reports whether data is in non-decreasing order.
// Empty and single-item sequences are sorted.
func IsSorted[T sortable.Sortable[T]](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i].LessThan(data[i-1]) {
			return false
		}
	}

	return true
}
