package keypath

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-keypath/errors"
	"github.com/amp-labs/amp-keypath/optional"
	"github.com/amp-labs/amp-keypath/zero"
)

// PartialKeyPath is a key path whose value type has been erased: it still
// knows its Root, but Get returns any. Use it to hold key paths with
// different value types in one container.
//
// The static value type is recoverable only through the explicit narrowing
// operations Narrow and ValueAs.
type PartialKeyPath[Root any] struct {
	segments  []string
	valueType reflect.Type
	get       func(Root) any
	typed     any
}

// Erase discards the static value type, keeping only the root type.
func (k KeyPath[Root, Value]) Erase() PartialKeyPath[Root] {
	return PartialKeyPath[Root]{
		segments:  k.segments,
		valueType: reflect.TypeFor[Value](),
		get: func(root Root) any {
			return k.get(root)
		},
		typed: k,
	}
}

// Get resolves the value at the path's location in root, untyped.
func (p PartialKeyPath[Root]) Get(root Root) any {
	return p.get(root)
}

// ValueType returns the reflect.Type of the erased value type.
func (p PartialKeyPath[Root]) ValueType() reflect.Type {
	return p.valueType
}

// Path renders the path in bracket notation.
func (p PartialKeyPath[Root]) Path() string {
	return renderPath(p.segments)
}

// String implements fmt.Stringer using the bracket notation rendering.
func (p PartialKeyPath[Root]) String() string {
	return p.Path()
}

// Narrow recovers the fully typed key path from a value-erased one.
// Returns None if the erased path's value type is not Value.
func Narrow[Root, Value any](p PartialKeyPath[Root]) optional.Value[KeyPath[Root, Value]] {
	if typed, ok := p.typed.(KeyPath[Root, Value]); ok {
		return optional.Some(typed)
	}

	return optional.None[KeyPath[Root, Value]]()
}

// ValueAs reads through a value-erased key path and recovers the static
// value type in one step. Returns ErrWrongType if the path's value type is
// not Value.
func ValueAs[Value, Root any](p PartialKeyPath[Root], root Root) (Value, error) {
	value, ok := p.get(root).(Value)
	if !ok {
		return zero.Value[Value](), fmt.Errorf(
			"%w: expected value type %v, but key path %s holds %v",
			errors.ErrWrongType, reflect.TypeFor[Value](), p.Path(), p.valueType,
		)
	}

	return value, nil
}

// AnyKeyPath is a fully erased key path: both root and value types are gone.
// Get takes and returns any, and reports ErrWrongType when handed a root of
// the wrong type — the price of fully heterogeneous storage.
type AnyKeyPath struct {
	segments  []string
	rootType  reflect.Type
	valueType reflect.Type
	get       func(any) (any, error)
	typed     any
}

// EraseRoot discards the remaining root type, yielding a fully erased path.
func (p PartialKeyPath[Root]) EraseRoot() AnyKeyPath {
	return AnyKeyPath{
		segments:  p.segments,
		rootType:  reflect.TypeFor[Root](),
		valueType: p.valueType,
		get: func(root any) (any, error) {
			typed, ok := root.(Root)
			if !ok {
				return nil, fmt.Errorf(
					"%w: expected root type %v, but received %T",
					errors.ErrWrongType, reflect.TypeFor[Root](), root,
				)
			}

			return p.get(typed), nil
		},
		typed: p.typed,
	}
}

// Get resolves the value at the path's location in root.
// Returns ErrWrongType if root is not of the path's root type.
func (a AnyKeyPath) Get(root any) (any, error) {
	return a.get(root)
}

// RootType returns the reflect.Type of the erased root type.
func (a AnyKeyPath) RootType() reflect.Type {
	return a.rootType
}

// ValueType returns the reflect.Type of the erased value type.
func (a AnyKeyPath) ValueType() reflect.Type {
	return a.valueType
}

// Path renders the path in bracket notation.
func (a AnyKeyPath) Path() string {
	return renderPath(a.segments)
}

// String implements fmt.Stringer using the bracket notation rendering.
func (a AnyKeyPath) String() string {
	return a.Path()
}

// NarrowAny recovers the fully typed key path from a fully erased one.
// Returns None unless both Root and Value match the erased path's types.
func NarrowAny[Root, Value any](a AnyKeyPath) optional.Value[KeyPath[Root, Value]] {
	if typed, ok := a.typed.(KeyPath[Root, Value]); ok {
		return optional.Some(typed)
	}

	return optional.None[KeyPath[Root, Value]]()
}
