// Package heap implements an array-backed binary min/max heap with
// priority-queue semantics.
//
// Storage is 1-based: slot 0 is permanently unused so that the parent of
// slot i is i/2 and its children are 2i and 2i+1. Slots vacated by Pop are
// recorded in a free-index set and reused by later inserts instead of
// shifting elements; the slot array only ever grows.
//
// Instances are not safe for concurrent use. Callers embedding a Heap in a
// concurrent context must serialize access, holding one exclusive lock per
// instance for the duration of each operation.
package heap

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cartland/algorithms/sortable"
	"github.com/cartland/algorithms/zero"
)

// ErrEmpty is returned when peeking at or popping from a heap that holds
// no items. It is a recoverable precondition failure, not a panic; check
// for it with errors.Is.
var ErrEmpty = errors.New("heap is empty")

// Heap is a binary min- or max-heap. The ordering mode is fixed when the
// heap is constructed; use NewMin or NewMax rather than a struct literal.
//
// Invariant: for every occupied slot i with parent p, the parent orders
// before the child (parent ≤ child for a min-heap, parent ≥ child for a
// max-heap). Slots in the free set hold stale values and are excluded.
type Heap[T sortable.Sortable[T]] struct {
	slots   []T
	count   int
	free    map[int]struct{}
	maxHeap bool
}

// NewMin creates a heap whose top item is the smallest.
func NewMin[T sortable.Sortable[T]]() *Heap[T] {
	return &Heap[T]{
		slots: make([]T, 1), // Slot 0 is unused for easier parent/child math.
		free:  make(map[int]struct{}),
	}
}

// NewMax creates a heap whose top item is the largest.
func NewMax[T sortable.Sortable[T]]() *Heap[T] {
	return &Heap[T]{
		slots:   make([]T, 1), // Slot 0 is unused for easier parent/child math.
		free:    make(map[int]struct{}),
		maxHeap: true,
	}
}

// Count returns the number of live items in the heap. This is distinct
// from the length of the slot array, which never shrinks.
func (h *Heap[T]) Count() int {
	return h.count
}

// inOrder reports whether parent and child satisfy the heap order for this
// heap's mode.
func (h *Heap[T]) inOrder(parent, child T) bool {
	if h.maxHeap {
		return !parent.LessThan(child)
	}

	return !child.LessThan(parent)
}

// Insert adds item to the heap.
// Time complexity: O(log n).
func (h *Heap[T]) Insert(item T) {
	index := h.claimIndex(item)

	h.slots[index] = item
	for index > 1 {
		parentIndex := index / 2
		if h.inOrder(h.slots[parentIndex], h.slots[index]) {
			// The item does not need to bubble up anymore.
			return
		}

		h.slots[index], h.slots[parentIndex] = h.slots[parentIndex], h.slots[index]
		index = parentIndex
	}
}

// claimIndex allocates a slot for item: an arbitrary member of the free
// set when one exists, otherwise a freshly appended slot.
func (h *Heap[T]) claimIndex(item T) int {
	h.count++

	for index := range h.free {
		delete(h.free, index)
		h.slots[index] = item

		return index
	}

	index := len(h.slots)
	h.slots = append(h.slots, item)

	return index
}

// Peek returns the top item without removing it. It fails with ErrEmpty
// when the heap holds no items.
// Time complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if h.count <= 0 {
		return zero.Value[T](), ErrEmpty
	}

	return h.slots[1], nil
}

// Pop removes and returns the top item, or ErrEmpty when the heap holds
// no items.
//
// Rather than moving the last item into the root and sifting down, the
// vacancy itself migrates: each step promotes the winning child's value
// into the hole and follows that child, and the leaf where the hole comes
// to rest joins the free set. The result is the same as the textbook
// variant but a different slot becomes reusable, and Insert's allocation
// depends on that.
// Time complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	result, err := h.Peek()
	if err != nil {
		return result, err
	}

	h.count--

	index := 1
	for {
		left := index * 2
		right := left + 1

		switch {
		case h.isInvalidIndex(left) && h.isInvalidIndex(right):
			// Neither child exists; the vacancy rests here.
			h.free[index] = struct{}{}

			return result, nil
		case h.isInvalidIndex(right):
			h.slots[index] = h.slots[left]
			index = left
		case h.isInvalidIndex(left):
			h.slots[index] = h.slots[right]
			index = right
		case h.inOrder(h.slots[left], h.slots[right]):
			// The left child wins the slot; the vacancy follows it.
			h.slots[index] = h.slots[left]
			index = left
		default:
			h.slots[index] = h.slots[right]
			index = right
		}
	}
}

// isInvalidIndex reports whether index holds no live item: out of range on
// either side, or vacated by an earlier Pop.
func (h *Heap[T]) isInvalidIndex(index int) bool {
	if index <= 0 || index >= len(h.slots) {
		return true
	}

	_, vacated := h.free[index]

	return vacated
}

// String summarizes the heap state for debugging: the live count, the raw
// slot array (including stale values in vacated slots) and the free
// indices in ascending order.
func (h *Heap[T]) String() string {
	free := make([]int, 0, len(h.free))
	for index := range h.free {
		free = append(free, index)
	}

	slices.Sort(free)

	return fmt.Sprintf("count: %d, slots: %v, free: %v", h.count, h.slots[1:], free)
}
