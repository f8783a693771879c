// Package pointer provides small helpers for creating and dereferencing pointers.
package pointer

// To returns a pointer to the given value. Useful for obtaining a mutable
// root handle for a reference-writable key path:
//
//	cat := pointer.To(Cat{Name: "Nala"})
//	caloriesPath.Set(cat, 340)
func To[T any](v T) *T {
	return &v
}

// Value safely dereferences a pointer. If the pointer is nil, it returns the
// zero value of T and false; otherwise the dereferenced value and true.
func Value[T any](p *T) (T, bool) {
	if p == nil {
		var zero T

		return zero, false
	}

	return *p, true
}
