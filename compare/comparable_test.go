package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// caseInsensitiveName demonstrates a type with its own equality semantics.
type caseInsensitiveName string

func (n caseInsensitiveName) Equals(other caseInsensitiveName) bool {
	return len(n) == len(other) && equalFold(string(n), string(other))
}

func equalFold(a, b string) bool {
	for i := range len(a) {
		ca, cb := a[i]|0x20, b[i]|0x20
		if ca != cb {
			return false
		}
	}

	return true
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        caseInsensitiveName
		b        caseInsensitiveName
		expected bool
	}{
		{
			name:     "same case",
			a:        "Nala",
			b:        "Nala",
			expected: true,
		},
		{
			name:     "different case",
			a:        "Nala",
			b:        "nala",
			expected: true,
		},
		{
			name:     "different names",
			a:        "Nala",
			b:        "Tacco",
			expected: false,
		},
		{
			name:     "empty",
			a:        "",
			b:        "",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals(tt.a, tt.b))
		})
	}
}
