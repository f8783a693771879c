// Package optional provides a type-safe option type for values that may be absent.
// An Optional explicitly models presence or absence instead of relying on nil
// or zero values; key path narrowing returns one rather than performing an
// implicit cast.
package optional

import "fmt"

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value holding a value, or None() for an empty one.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether the value is present.
// This is the safe way to extract a value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or the provided default value if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// ForEach applies the given function to the value if present.
// Does nothing if the Value is empty.
func (o Value[T]) ForEach(f func(T)) {
	if o.isSet {
		f(o.value)
	}
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the value inside the Value using the provided function.
// Returns Some(f(value)) if a value is present, or None if empty.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
