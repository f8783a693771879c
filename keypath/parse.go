package keypath

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Sentinel errors for key path string parsing and resolution.
// All of these are construction-time errors: once Parse or ParseWritable
// succeeds, the returned key path reads and writes without failure.
var (
	ErrPathEmpty               = errors.New("key path string cannot be empty")
	ErrPathMustStartWithDollar = errors.New("key path string must start with $[")
	ErrPathEmptySegment        = errors.New("key path string contains empty segment")
	ErrPathInvalidSyntax       = errors.New("invalid bracket notation syntax")
	ErrPathNotStruct           = errors.New("key path segment does not traverse a struct")
	ErrPathPointerField        = errors.New("key path cannot traverse a pointer field")
	ErrPathFieldNotFound       = errors.New("no such field")
	ErrPathFieldUnexported     = errors.New("field is not exported")
	ErrPathValueType           = errors.New("key path value type mismatch")
)

var segmentRe = regexp.MustCompile(`\['([^']+)'\]`)

// ParsePath parses a bracket notation string into its field name segments.
// Example: ParsePath("$['favoriteFood']['calories']") returns
// ["favoriteFood", "calories"], nil.
func ParsePath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrPathEmpty
	}

	if !strings.HasPrefix(path, "$[") {
		return nil, fmt.Errorf("%w, got: %s", ErrPathMustStartWithDollar, path)
	}

	if strings.Contains(path, "['']") {
		return nil, fmt.Errorf("%w: %s", ErrPathEmptySegment, path)
	}

	matches := segmentRe.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPathInvalidSyntax, path)
	}

	// Validate by reconstructing the path from the extracted segments.
	var reconstructed strings.Builder

	reconstructed.WriteString("$")

	segments := make([]string, len(matches))
	for idx, match := range matches {
		segments[idx] = match[1]

		reconstructed.WriteString(fmt.Sprintf("['%s']", match[1]))
	}

	if reconstructed.String() != path {
		return nil, fmt.Errorf("%w: %s", ErrPathInvalidSyntax, path)
	}

	return segments, nil
}

// Parse builds a read-only key path from a bracket notation string, resolved
// against Root's exported struct fields via reflection. Field matching is
// case-insensitive with exact matches preferred, so "$['favoriteFood']"
// resolves the Go field FavoriteFood.
//
// The whole chain is validated here: syntax, field existence, exportedness,
// struct-typed intermediate hops, and agreement of the terminal field type
// with Value. The returned path's Get is total.
func Parse[Root, Value any](path string) (KeyPath[Root, Value], error) {
	kp, _, err := parseResolved[Root, Value](path)

	return kp, err
}

// ParseWritable builds a writable key path from a bracket notation string.
// Validation is identical to Parse; the setter writes the terminal field
// through reflection and returns the updated owner value.
func ParseWritable[Root, Value any](path string) (WritableKeyPath[Root, Value], error) {
	kp, index, err := parseResolved[Root, Value](path)
	if err != nil {
		return WritableKeyPath[Root, Value]{}, err
	}

	return WritableKeyPath[Root, Value]{
		KeyPath: kp,
		set: func(root Root, value Value) Root {
			owner := reflect.ValueOf(&root).Elem()
			owner.FieldByIndex(index).Set(reflect.ValueOf(value))

			return root
		},
	}, nil
}

// Validate checks that a bracket notation string resolves against Root's
// struct fields, without requiring the terminal value type. Useful for
// validating a batch of configured paths up front.
func Validate[Root any](path string) error {
	segments, err := ParsePath(path)
	if err != nil {
		return err
	}

	_, _, err = resolveSegments(reflect.TypeFor[Root](), segments)

	return err
}

func parseResolved[Root, Value any](path string) (KeyPath[Root, Value], []int, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return KeyPath[Root, Value]{}, nil, err
	}

	index, terminal, err := resolveSegments(reflect.TypeFor[Root](), segments)
	if err != nil {
		return KeyPath[Root, Value]{}, nil, err
	}

	if terminal != reflect.TypeFor[Value]() {
		return KeyPath[Root, Value]{}, nil, fmt.Errorf(
			"%w: %s resolves to %s, not %s",
			ErrPathValueType, path, terminal, reflect.TypeFor[Value](),
		)
	}

	return KeyPath[Root, Value]{
		segments: segments,
		get: func(root Root) Value {
			// The assertion cannot fail: the terminal type was checked above.
			return reflect.ValueOf(root).FieldByIndex(index).Interface().(Value)
		},
	}, index, nil
}

// resolveSegments walks the field chain on the root type, returning the
// flattened field index and the terminal field type. Pointer hops are
// rejected so resolved paths stay total (no nil indirection at read time).
func resolveSegments(root reflect.Type, segments []string) ([]int, reflect.Type, error) {
	current := root
	index := make([]int, 0, len(segments))

	for depth, segment := range segments {
		if current.Kind() != reflect.Struct {
			return nil, nil, fmt.Errorf(
				"%w: segment %d ('%s'), parent is type %s",
				ErrPathNotStruct, depth, segment, current,
			)
		}

		field, found := lookupField(current, segment)
		if !found {
			return nil, nil, fmt.Errorf(
				"%w: '%s' at segment %d of type %s",
				ErrPathFieldNotFound, segment, depth, current,
			)
		}

		if field.PkgPath != "" {
			return nil, nil, fmt.Errorf(
				"%w: '%s' at segment %d of type %s",
				ErrPathFieldUnexported, segment, depth, current,
			)
		}

		if depth < len(segments)-1 && field.Type.Kind() == reflect.Pointer {
			return nil, nil, fmt.Errorf(
				"%w: '%s' at segment %d is type %s",
				ErrPathPointerField, segment, depth, field.Type,
			)
		}

		index = append(index, field.Index...)
		current = field.Type
	}

	return index, current, nil
}

// lookupField performs field lookup with case-insensitive fallback.
// Exact matches are preferred over case-insensitive matches.
func lookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	if field, ok := t.FieldByName(name); ok {
		return field, true
	}

	lower := strings.ToLower(name)
	for i := range t.NumField() {
		if field := t.Field(i); strings.ToLower(field.Name) == lower {
			return field, true
		}
	}

	return reflect.StructField{}, false
}
