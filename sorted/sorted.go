// Package sorted orders containers of elements by a value reached through a
// key path. It is a thin adapter from "compare by field" to "compare by
// value": the actual ordering algorithm, complexity and stability are those
// of the standard sort primitives it delegates to.
package sorted

import (
	"cmp"
	"slices"
	"sort"

	"github.com/amp-labs/amp-keypath/keypath"
	"github.com/amp-labs/amp-keypath/sortable"
)

// By returns a copy of items ordered by the value each element resolves
// through key, using the caller-supplied strict ordering predicate.
// The input slice is not modified.
//
// isOrderedBefore must be a valid strict weak ordering; otherwise the result
// order is implementation-defined, exactly as with sort.Slice. Ordering is
// not stable: elements that compare equal keep an implementation-defined
// relative order. Use ByStable when ties must be preserved.
func By[E, V any](items []E, key keypath.Getter[E, V], isOrderedBefore func(a, b V) bool) []E {
	out := slices.Clone(items)

	InPlace(out, key, isOrderedBefore)

	return out
}

// ByStable is By with guaranteed stability: elements whose keys compare
// equal keep their original relative order (sort.SliceStable).
func ByStable[E, V any](items []E, key keypath.Getter[E, V], isOrderedBefore func(a, b V) bool) []E {
	out := slices.Clone(items)

	sort.SliceStable(out, func(i, j int) bool {
		return isOrderedBefore(key.Get(out[i]), key.Get(out[j]))
	})

	return out
}

// InPlace sorts items directly instead of returning a copy.
func InPlace[E, V any](items []E, key keypath.Getter[E, V], isOrderedBefore func(a, b V) bool) {
	sort.Slice(items, func(i, j int) bool {
		return isOrderedBefore(key.Get(items[i]), key.Get(items[j]))
	})
}

// ByOrdered returns a copy of items in ascending order of their keys,
// for key types with a built-in ordering. It takes the concrete key path so
// both type parameters are inferred; writable paths expose theirs through
// the embedded KeyPath field.
func ByOrdered[E any, V cmp.Ordered](items []E, key keypath.KeyPath[E, V]) []E {
	return By(items, key, Ascending[V]())
}

// BySortable returns a copy of items in ascending order of their keys,
// for key types implementing sortable.Sortable.
func BySortable[E any, V sortable.Sortable[V]](items []E, key keypath.KeyPath[E, V]) []E {
	return By(items, key, sortable.Less[V])
}
