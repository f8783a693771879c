// Package compare provides the equality interface shared by orderable types.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface decide their own equality semantics; the wrappers
// in the sortable package implement it for the common primitives.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
