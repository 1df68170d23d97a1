package sorters

import (
	"math/rand/v2"
	"slices"

	"github.com/cartland/algorithms/sortable"
)

// Quick sorts in place around randomly chosen pivots. Not stable.
// O(n log n) expected time.
type Quick[T sortable.Sortable[T]] struct {
	rng *rand.Rand
}

// Compile-time check that Quick implements Sorter.
var _ Sorter[sortable.Int] = Quick[sortable.Int]{}

// NewQuick creates a quick sorter that draws pivot positions from rng.
// Injecting the source keeps pivot choices reproducible under a fixed
// seed. A nil rng falls back to the shared global source, as does the
// zero value Quick[T]{}.
func NewQuick[T sortable.Sortable[T]](rng *rand.Rand) Quick[T] {
	return Quick[T]{rng: rng}
}

// Sort returns a sorted copy of data.
func (q Quick[T]) Sort(data []T) []T {
	out := slices.Clone(data)
	q.quickSort(out, 0, len(out)-1)

	return out
}

// intN returns a pseudo-random int in [0, n).
func (q Quick[T]) intN(n int) int {
	if q.rng == nil {
		return rand.IntN(n)
	}

	return q.rng.IntN(n)
}

// quickSort partitions data[lo..hi] around a randomly chosen pivot value
// and recurses on both sides.
//
// The partition swaps the pivot to lo and then walks the range: each item
// smaller than the pivot value moves into the pivot's position, the item
// just past the pivot takes the smaller item's old slot, and the pivot
// value advances one position.
func (q Quick[T]) quickSort(data []T, lo, hi int) {
	if lo >= hi {
		return
	}

	pivot := lo + q.intN(hi-lo+1)
	pivotVal := data[pivot]
	data[pivot] = data[lo]
	data[lo] = pivotVal
	pivot = lo

	for i := lo; i <= hi; i++ {
		if data[i].LessThan(pivotVal) {
			data[pivot] = data[i]
			data[i] = data[pivot+1]
			data[pivot+1] = pivotVal
			pivot++
		}
	}

	q.quickSort(data, lo, pivot-1)
	q.quickSort(data, pivot+1, hi)
}
