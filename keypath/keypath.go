package keypath

import (
	"fmt"
	"slices"
	"strings"
)

// Getter is the read capability shared by all key path variants.
// Get resolves the value at the path's location in root. For a well-formed
// key path it is total: deterministic, side-effect free, and cannot fail.
type Getter[Root, Value any] interface {
	Get(root Root) Value
}

// KeyPath is a read-only reference to a Value location within a Root.
// The zero value is not usable; construct with New, Identity, Append or Parse.
type KeyPath[Root, Value any] struct {
	segments []string
	get      func(Root) Value
}

// Compile-time check that KeyPath implements Getter.
var _ Getter[struct{}, int] = KeyPath[struct{}, int]{}

// New creates a key path for a single named field of Root. The getter fixes
// Root and Value at compile time; a field that does not exist, or whose type
// disagrees with Value, cannot compile.
//
//	name := keypath.New("name", func(c Cat) string { return c.Name })
func New[Root, Value any](field string, get func(Root) Value) KeyPath[Root, Value] {
	return KeyPath[Root, Value]{
		segments: []string{field},
		get:      get,
	}
}

// Identity returns the key path from Root to itself. It is the neutral
// element of Append.
func Identity[Root any]() KeyPath[Root, Root] {
	return KeyPath[Root, Root]{
		segments: nil,
		get: func(root Root) Root {
			return root
		},
	}
}

// Get resolves the value at the path's location in root.
func (k KeyPath[Root, Value]) Get(root Root) Value {
	return k.get(root)
}

// Segments returns a copy of the field names along the path, outermost first.
func (k KeyPath[Root, Value]) Segments() []string {
	return slices.Clone(k.segments)
}

// Path renders the path in bracket notation, e.g. "$['favoriteFood']['calories']".
// The identity path renders as "$".
func (k KeyPath[Root, Value]) Path() string {
	return renderPath(k.segments)
}

// String implements fmt.Stringer using the bracket notation rendering.
func (k KeyPath[Root, Value]) String() string {
	return k.Path()
}

// Append concatenates two key paths end-to-end: the result resolves inner
// within the value resolved by outer. Appending is pure (neither input is
// modified) and associative.
func Append[Root, Mid, Value any](
	outer KeyPath[Root, Mid], inner KeyPath[Mid, Value],
) KeyPath[Root, Value] {
	return KeyPath[Root, Value]{
		segments: joinSegments(outer.segments, inner.segments),
		get: func(root Root) Value {
			return inner.get(outer.get(root))
		},
	}
}

// joinSegments returns a fresh slice so appended paths never share backing
// arrays with their inputs.
func joinSegments(outer, inner []string) []string {
	joined := make([]string, 0, len(outer)+len(inner))
	joined = append(joined, outer...)
	joined = append(joined, inner...)

	return joined
}

func renderPath(segments []string) string {
	var b strings.Builder

	b.WriteString("$")

	for _, segment := range segments {
		b.WriteString(fmt.Sprintf("['%s']", segment))
	}

	return b.String()
}
