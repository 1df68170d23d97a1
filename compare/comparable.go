// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can decide their own equality.
// Implementations define what "equal" means for the type; equality does not have
// to coincide with Go's == operator.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
