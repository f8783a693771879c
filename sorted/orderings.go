package sorted

import (
	"cmp"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ascending returns the natural ascending ordering for V.
// NaN float keys order before any other value (cmp.Less semantics).
func Ascending[V cmp.Ordered]() func(a, b V) bool {
	return func(a, b V) bool {
		return cmp.Less(a, b)
	}
}

// Descending returns the natural descending ordering for V.
func Descending[V cmp.Ordered]() func(a, b V) bool {
	return func(a, b V) bool {
		return cmp.Less(b, a)
	}
}

// Naturally orders strings in natural order: embedded digit runs compare
// numerically, so "cat2" sorts before "cat10".
func Naturally(a, b string) bool {
	return natsort.Compare(a, b)
}

// Collated returns a locale-aware string ordering for the given language,
// e.g. Collated(language.German). The returned predicate carries the
// collator and is not safe for concurrent use.
func Collated(tag language.Tag) func(a, b string) bool {
	c := collate.New(tag)

	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}
