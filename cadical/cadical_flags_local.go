//go:build cgo && cadical_local
// +build cgo,cadical_local

package cadical

/*
// Build with -tags cadical_local against a CaDiCaL source checkout placed (or
// symlinked) next to this package as ./cadical-src, after running its
// ./configure && make.
#cgo CXXFLAGS: -I${SRCDIR}/cadical-src/src
#cgo LDFLAGS: -L${SRCDIR}/cadical-src/build
*/
import "C"
