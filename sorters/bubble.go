package sorters

import (
	"slices"

	"github.com/cartland/algorithms/sortable"
)

// Bubble sorts by repeated adjacent-swap passes until a pass performs no
// swap. Stable. O(n^2) time.
type Bubble[T sortable.Sortable[T]] struct{}

// Compile-time check that Bubble implements Sorter.
var _ Sorter[sortable.Int] = Bubble[sortable.Int]{}

// Sort returns a sorted copy of data.
func (Bubble[T]) Sort(data []T) []T {
	out := slices.Clone(data)

	for done := false; !done; {
		done = true

		for i := 0; i+1 < len(out); i++ {
			if out[i+1].LessThan(out[i]) {
				out[i], out[i+1] = out[i+1], out[i]
				done = false
			}
		}
	}

	return out
}
