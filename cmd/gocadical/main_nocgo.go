//go:build !cgo
// +build !cgo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "gocadical: built without cgo; rebuild with CGO_ENABLED=1 and CaDiCaL installed")
	os.Exit(1)
}
