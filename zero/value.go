// Package zero provides utilities for working with zero values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T. Useful for failure returns in
// generic functions, where `return zero.Value[T](), err` reads better than
// declaring a throwaway variable.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual to perform a deep comparison.
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
