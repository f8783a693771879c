package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val) // zero value
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).GetOrElse(99))
	assert.Equal(t, 99, None[int]().GetOrElse(99))
}

func TestForEach(t *testing.T) {
	t.Parallel()

	var seen []string

	Some("hello").ForEach(func(s string) {
		seen = append(seen, s)
	})
	None[string]().ForEach(func(s string) {
		seen = append(seen, s)
	})

	assert.Equal(t, []string{"hello"}, seen)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(42)", Some(42).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Some(21), func(i int) int {
		return i * 2
	})
	assert.Equal(t, 42, doubled.GetOrElse(0))

	empty := Map(None[int](), func(i int) string {
		return "never"
	})
	assert.True(t, empty.Empty())
}
