// Package errors provides shared sentinel errors and a small error accumulator.
package errors

import "errors"

// ErrWrongType is returned when a runtime type check fails, such as reading
// a value through a type-erased key path with the wrong expected type.
var ErrWrongType = errors.New("wrong type")

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use it when several independent checks should all run before reporting,
// such as validating a batch of key path strings.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
