package sorters

import (
	"slices"

	"github.com/cartland/algorithms/sortable"
)

// Insertion sorts by shifting each item left into its place among the
// already-sorted prefix. Stable. O(n^2) time.
type Insertion[T sortable.Sortable[T]] struct{}

// Compile-time check that Insertion implements Sorter.
var _ Sorter[sortable.Int] = Insertion[sortable.Int]{}

// Sort returns a sorted copy of data.
func (Insertion[T]) Sort(data []T) []T {
	out := slices.Clone(data)

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].LessThan(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}
