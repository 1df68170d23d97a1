package sorters

import (
	"github.com/cartland/algorithms/assert"
	"github.com/cartland/algorithms/heap"
	"github.com/cartland/algorithms/sortable"
)

// Heap sorts by inserting every item into a min-heap and popping them all
// back in order. Not stable. O(n log n) time, O(n) extra space for the
// heap.
type Heap[T sortable.Sortable[T]] struct{}

// Compile-time check that Heap implements Sorter.
var _ Sorter[sortable.Int] = Heap[sortable.Int]{}

// Sort returns a sorted copy of data.
func (Heap[T]) Sort(data []T) []T {
	h := heap.NewMin[T]()
	for _, item := range data {
		h.Insert(item)
	}

	out := make([]T, len(data))
	for i := range out {
		item, err := h.Pop()
		// The heap holds exactly len(data) items, so Pop cannot run dry.
		assert.True(err == nil, "sorters: heap ran dry after %d of %d pops: %v", i, len(data), err)

		out[i] = item
	}

	return out
}
