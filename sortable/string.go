package sortable

// String is a sortable wrapper type for the built-in string type.
// Ordering is byte-wise lexicographic, matching the language's < operator.
//
// To convert back to a regular string, use a type conversion:
//
//	var s sortable.String = "whiskers"
//	regular := string(s)
type String string

// Compile-time check that String implements Sortable[String].
var _ Sortable[String] = (*String)(nil)

// Equals returns true if this String has the same value as the other String.
func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan returns true if this String sorts lexicographically before the other String.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
