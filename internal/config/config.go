// Package config loads the YAML run configuration of the gocadical command
// and applies it to a solver.
package config

import (
	"bytes"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config is a run configuration. Engine settings are applied with Apply;
// the remaining fields steer the command itself.
type Config struct {
	// Configuration is one of the engine's named option sets.
	Configuration string `yaml:"configuration" validate:"omitempty,oneof=default plain sat unsat"`
	// Options maps option names to values, as with Solver.Set.
	Options map[string]int `yaml:"options" validate:"dive,keys,min=1,endkeys"`
	// LongOptions are command line style "--name=value" settings.
	LongOptions []string `yaml:"long_options" validate:"dive,startswith=--"`
	// Limits apply to the first solve only.
	Limits map[string]int `yaml:"limits" validate:"dive,keys,min=1,endkeys,gte=-1"`

	Strict    int           `yaml:"strict" validate:"gte=0,lte=2"`
	Workers   int           `yaml:"workers" validate:"gte=1,lte=256"`
	CubeDepth int           `yaml:"cube_depth" validate:"gte=0,lte=30"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Strict: 1, Workers: 1}
}

// Parse decodes data over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "config: decoding")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: reading")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return c, nil
}

// Validate checks the struct tags of c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "config: invalid")
	}
	return nil
}

// Target is the part of *cadical.Solver that Apply needs.
type Target interface {
	Configure(name string) error
	Set(name string, val int) error
	SetLongOption(arg string) error
	Limit(name string, val int) error
}

// Apply configures t, which must still be CONFIGURING: the named
// configuration first, then options in name order, then long options and
// finally limits. The first error is returned as reported by t, usually a
// *cadical.OptionError.
func (c *Config) Apply(t Target) error {
	if c.Configuration != "" {
		if err := t.Configure(c.Configuration); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.Options) {
		if err := t.Set(name, c.Options[name]); err != nil {
			return err
		}
	}
	for _, arg := range c.LongOptions {
		if err := t.SetLongOption(arg); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(c.Limits) {
		if err := t.Limit(name, c.Limits[name]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
