package sorters

import (
	"slices"

	"github.com/cartland/algorithms/sortable"
)

// Merge sorts by dividing at the midpoint, sorting each half recursively
// and merging the sorted halves linearly through a temporary buffer.
// Stable. O(n log n) time, O(n) extra space.
type Merge[T sortable.Sortable[T]] struct{}

// Compile-time check that Merge implements Sorter.
var _ Sorter[sortable.Int] = Merge[sortable.Int]{}

// Sort returns a sorted copy of data.
func (m Merge[T]) Sort(data []T) []T {
	out := slices.Clone(data)
	m.mergeSort(out, 0, len(out)-1)

	return out
}

// mergeSort sorts data[left..right] inclusive.
func (m Merge[T]) mergeSort(data []T, left, right int) {
	if left >= right {
		return
	}

	center := (left + right) / 2
	m.mergeSort(data, left, center)
	m.mergeSort(data, center+1, right)
	m.merge(data, left, center+1, right)
}

// merge combines the adjacent sorted runs data[left..right-1] and
// data[right..rightEnd]. Ties take from the left run, which is what makes
// the sort stable.
func (m Merge[T]) merge(data []T, left, right, rightEnd int) {
	leftEnd := right - 1
	temp := make([]T, 0, rightEnd-left+1)

	li, ri := left, right
	for li <= leftEnd && ri <= rightEnd {
		if data[ri].LessThan(data[li]) {
			temp = append(temp, data[ri])
			ri++
		} else {
			temp = append(temp, data[li])
			li++
		}
	}

	for ; li <= leftEnd; li++ {
		temp = append(temp, data[li])
	}

	for ; ri <= rightEnd; ri++ {
		temp = append(temp, data[ri])
	}

	copy(data[left:], temp)
}
