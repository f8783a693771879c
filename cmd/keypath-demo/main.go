// Command keypath-demo walks through the key path API: construction,
// composition, keyed sorting, in-place mutation and type erasure, over a
// small Cat/Food data set.
package main

import (
	"log/slog"
	"os"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("demo failed", "error", err)
		os.Exit(1)
	}
}
