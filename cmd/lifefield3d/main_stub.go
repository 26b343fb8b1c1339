//go:build !raylib

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "lifefield3d requires the raylib build tag (and cgo).")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags raylib ./cmd/lifefield3d`.")
	os.Exit(2)
}
