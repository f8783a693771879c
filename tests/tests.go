// Package tests provides small helpers for test logging and for generating
// unique identifiers, so randomized tests can build fixtures with distinct,
// traceable names.
package tests

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

// Logger returns a slog.Logger that writes through t.Log, so log output is
// captured per-test and only shown for failures (or with -v).
func Logger(t *testing.T) *slog.Logger {
	t.Helper()

	return slogt.New(t)
}

// RandomID returns a unique identifier with a "test-" prefix.
// Useful for generating fixture values that are guaranteed distinct.
func RandomID() string {
	return "test-" + uuid.New().String()
}
