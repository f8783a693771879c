package sortable

// Float64 is a sortable wrapper type for the built-in float64 type.
// NaN compares neither less than nor equal to anything, matching the
// behavior of the < operator on floats.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if this Float64 has the same value as the other Float64.
func (f Float64) Equals(other Float64) bool {
	return float64(f) == float64(other)
}

// LessThan returns true if this Float64 is numerically less than the other Float64.
func (f Float64) LessThan(other Float64) bool {
	return float64(f) < float64(other)
}
