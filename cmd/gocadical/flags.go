package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// optionFlag collects repeated "--option name=value" settings. A leading
// "--" on the name and the values true and false are accepted, mirroring the
// engine's own command line.
type optionFlag map[string]int

var _ pflag.Value = optionFlag(nil)

func (f optionFlag) String() string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + strconv.Itoa(f[name])
	}
	return strings.Join(parts, ",")
}

func (f optionFlag) Set(arg string) error {
	arg = strings.TrimPrefix(arg, "--")
	name, val, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return errors.Errorf("option %q is not of the form name=value", arg)
	}
	switch val {
	case "true":
		f[name] = 1
		return nil
	case "false":
		f[name] = 0
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return errors.Wrapf(err, "option %s", name)
	}
	f[name] = n
	return nil
}

func (f optionFlag) Type() string { return "name=value" }
