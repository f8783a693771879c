package keypath

// WritableKeyPath is a key path over a mutable field with value semantics:
// Set does not touch the owner it is given, it returns the updated owner
// value, leaving it to the caller to rebind. This is the variant to use when
// roots are plain values.
type WritableKeyPath[Root, Value any] struct {
	KeyPath[Root, Value]

	set func(Root, Value) Root
}

var _ Getter[struct{}, int] = WritableKeyPath[struct{}, int]{}

// NewWritable creates a writable key path for a single named field of Root.
// The setter must return the owner with the field replaced and leave its
// argument otherwise untouched.
//
//	calories := keypath.NewWritable("calories",
//	    func(f Food) float64 { return f.Calories },
//	    func(f Food, v float64) Food { f.Calories = v; return f },
//	)
func NewWritable[Root, Value any](
	field string, get func(Root) Value, set func(Root, Value) Root,
) WritableKeyPath[Root, Value] {
	return WritableKeyPath[Root, Value]{
		KeyPath: New(field, get),
		set:     set,
	}
}

// Set returns a copy of root with the value at the path's location replaced.
func (k WritableKeyPath[Root, Value]) Set(root Root, value Value) Root {
	return k.set(root, value)
}

// AppendWritable concatenates two writable key paths. Writing through the
// result reads the intermediate value, writes the inner field, and writes the
// updated intermediate back into the root (read-modify-write, innermost out).
func AppendWritable[Root, Mid, Value any](
	outer WritableKeyPath[Root, Mid], inner WritableKeyPath[Mid, Value],
) WritableKeyPath[Root, Value] {
	return WritableKeyPath[Root, Value]{
		KeyPath: Append(outer.KeyPath, inner.KeyPath),
		set: func(root Root, value Value) Root {
			return outer.set(root, inner.set(outer.Get(root), value))
		},
	}
}

// ReferenceWritableKeyPath is a key path over a mutable field with reference
// semantics: Set mutates the owner in place through a *Root handle, so the
// caller does not need to rebind anything.
type ReferenceWritableKeyPath[Root, Value any] struct {
	KeyPath[Root, Value]

	set func(*Root, Value)
}

var _ Getter[struct{}, int] = ReferenceWritableKeyPath[struct{}, int]{}

// NewReferenceWritable creates a reference-writable key path for a single
// named field of Root, mutating through the given pointer setter.
func NewReferenceWritable[Root, Value any](
	field string, get func(Root) Value, set func(*Root, Value),
) ReferenceWritableKeyPath[Root, Value] {
	return ReferenceWritableKeyPath[Root, Value]{
		KeyPath: New(field, get),
		set:     set,
	}
}

// ByReference converts a writable key path into a reference-writable one
// that applies the value-semantics setter through the owner handle.
func (k WritableKeyPath[Root, Value]) ByReference() ReferenceWritableKeyPath[Root, Value] {
	return ReferenceWritableKeyPath[Root, Value]{
		KeyPath: k.KeyPath,
		set: func(root *Root, value Value) {
			*root = k.set(*root, value)
		},
	}
}

// Set replaces the value at the path's location, mutating root in place.
func (k ReferenceWritableKeyPath[Root, Value]) Set(root *Root, value Value) {
	k.set(root, value)
}
