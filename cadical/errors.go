package cadical

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is returned (or carried by a panic) when a solver is used after
// Close.
var ErrClosed = errors.New("cadical: solver is closed")

// OptionKind distinguishes the configuration namespaces of the engine.
type OptionKind int

const (
	KindOption OptionKind = iota
	KindLongOption
	KindConfiguration
	KindLimit
)

func (k OptionKind) String() string {
	switch k {
	case KindOption:
		return "option"
	case KindLongOption:
		return "long option"
	case KindConfiguration:
		return "configuration"
	case KindLimit:
		return "limit"
	}
	return fmt.Sprintf("OptionKind(%d)", int(k))
}

// OptionError reports a name or argument the engine rejected.
type OptionError struct {
	Kind OptionKind
	Name string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("cadical: invalid %s %q", e.Kind, e.Name)
}

// DIMACSError carries the engine's diagnostic for a failed DIMACS read or
// write. Msg is produced by the engine and has no structure beyond being
// human readable.
type DIMACSError struct {
	Path string
	Msg  string
}

func (e *DIMACSError) Error() string {
	return fmt.Sprintf("cadical: %s: %s", e.Path, e.Msg)
}

// diagnostic converts the engine's "empty string means success" convention
// into an error value.
func diagnostic(path, msg string) error {
	if msg == "" {
		return nil
	}
	return &DIMACSError{Path: path, Msg: msg}
}
