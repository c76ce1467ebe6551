//go:build !cgo
// +build !cgo

// Package cadical provides a Go binding to the CaDiCaL SAT solver.
// This stub allows the package to build without cgo available; the pure Go
// parts (states, statuses and the operation contract) remain usable.
// Install CaDiCaL and enable cgo to use the real binding.
package cadical

import "github.com/pkg/errors"

// ErrNoCgo is returned by New when the package was built without cgo.
var ErrNoCgo = errors.New("cadical: built without cgo, the native engine is unavailable")

// Placeholder types for documentation-only builds (no functionality).

type Solver struct{}

type Option func(s *Solver) error

type Connection struct{}

// New always fails with ErrNoCgo.
func New(options ...Option) (*Solver, error) {
	return nil, ErrNoCgo
}

// Close is a no-op.
func (s *Solver) Close() {}

// Signature returns the empty string without cgo.
func Signature() string { return "" }

// Version returns the empty string without cgo.
func Version() string { return "" }
