package sortable

import "facette.io/natsort"

// Natural is a sortable wrapper type for strings compared in natural sort
// order: runs of digits compare numerically, so "file2" sorts before
// "file10" where String would sort it after.
//
// Natural order is coarser than string equality. Two strings whose digit
// runs are numerically equal but textually different (such as "a01" and
// "a1") are not Equals yet neither is LessThan the other, which breaks the
// total-order contract of Sortable. Avoid such inputs when using Natural
// as a tree or heap payload.
type Natural string

// Compile-time check that Natural implements Sortable[Natural].
var _ Sortable[Natural] = (*Natural)(nil)

// Equals returns true if both strings are textually identical.
func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan returns true if this string sorts before the other in natural order.
func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other))
}
