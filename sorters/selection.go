package sorters

import (
	"slices"

	"github.com/cartland/algorithms/sortable"
)

// Selection sorts by repeatedly scanning the unsorted tail for its
// smallest item and swapping it into place. Not stable. O(n^2) time.
type Selection[T sortable.Sortable[T]] struct{}

// Compile-time check that Selection implements Sorter.
var _ Sorter[sortable.Int] = Selection[sortable.Int]{}

// Sort returns a sorted copy of data.
func (Selection[T]) Sort(data []T) []T {
	out := slices.Clone(data)

	for i := range out {
		best := i

		for j := i + 1; j < len(out); j++ {
			if out[j].LessThan(out[best]) {
				best = j
			}
		}

		out[i], out[best] = out[best], out[i]
	}

	return out
}
