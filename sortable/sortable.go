// Package sortable provides the ordering interface used by keyed sorting,
// plus wrapper types that implement it for common primitives.
package sortable

import (
	"github.com/amp-labs/amp-keypath/compare"
)

// Sortable is the ordering interface for value types: equality from
// compare.Comparable plus a strict LessThan. Any type implementing it can
// be used as the key type of sorted.BySortable.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less is an ordering predicate over any Sortable type. It adapts the
// LessThan method to the func(a, b) bool shape the sorted package accepts.
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}
