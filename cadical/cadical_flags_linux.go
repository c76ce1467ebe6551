//go:build cgo && linux
// +build cgo,linux

package cadical

/*
// CaDiCaL installs libcadical.a and cadical.hpp/tracer.hpp under the usual
// prefixes. Other locations can be supplied through CGO_CXXFLAGS/CGO_LDFLAGS.
#cgo CXXFLAGS: -I/usr/local/include -I/usr/include/cadical
#cgo LDFLAGS: -L/usr/local/lib -lcadical -lstdc++ -lm
*/
import "C"
