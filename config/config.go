// SPDX-License-Identifier: MIT
// Package: signtable/config
//
// config.go — program parameters, their defaults and validation.
//
// Numeric fields are checked through the validate package so their
// failures keep the ErrInvalidNumber / ErrInvalidRange taxonomy. String
// fields are checked with struct tags through go-playground/validator.

// Package config holds the program parameters of signtable.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	playvalidator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/signtable/render"
	"github.com/katalvlaran/signtable/rowstat"
	"github.com/katalvlaran/signtable/table"
	"github.com/katalvlaran/signtable/validate"
)

// Defaults of the original program.
const (
	DefaultSize = 10
	DefaultMin  = -100
	DefaultMax  = 100
)

// positionalArgs is the number of optional positional arguments: size min max.
const positionalArgs = 3

// ErrInvalidConfig wraps failures of the tag-based checks.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var structValidator = playvalidator.New()

// Config is the full set of program parameters.
type Config struct {
	// Size is the matrix dimension N.
	Size int `yaml:"size"`
	// Min and Max bound generated values, inclusive.
	Min int `yaml:"min"`
	Max int `yaml:"max"`
	// MaxRunLength is the forbidden consecutive same-sign run length.
	MaxRunLength int `yaml:"max_run_length"`
	// Seed for the random source; 0 means "pick one from the clock".
	Seed int64 `yaml:"seed"`

	MinPositiveLabel  string `yaml:"min_positive_label" validate:"required"`
	ReplacementsLabel string `yaml:"replacements_label" validate:"required"`
	Color             string `yaml:"color" validate:"required,oneof=auto always never"`
}

// Default returns SIZE=10, MIN=-100, MAX=100, MAX_REPEATS=3.
func Default() Config {
	return Config{
		Size:              DefaultSize,
		Min:               DefaultMin,
		Max:               DefaultMax,
		MaxRunLength:      rowstat.DefaultMaxRun,
		MinPositiveLabel:  table.DefaultMinPositiveLabel,
		ReplacementsLabel: table.DefaultReplacementsLabel,
		Color:             string(render.ColorAuto),
	}
}

// Validate checks every field; the first violation is returned.
func (c Config) Validate() error {
	if err := validate.PositiveInteger(float64(c.Size), "size"); err != nil {
		return err
	}
	if err := validate.Range(float64(c.Min), float64(c.Max)); err != nil {
		return err
	}
	if err := validate.PositiveInteger(float64(c.MaxRunLength), "max_run_length"); err != nil {
		return err
	}
	if c.MaxRunLength < rowstat.MinRunLength {
		return fmt.Errorf("max_run_length: must be at least %d, got %d: %w",
			rowstat.MinRunLength, c.MaxRunLength, validate.ErrInvalidNumber)
	}
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	return nil
}

// ApplyArgs overrides Size, Min and Max from positional arguments.
// It accepts either no arguments or exactly "size min max". Values are
// parsed as floats so that NaN, Inf and fractions reach the validators and
// are reported as such rather than as syntax errors.
//
// Errors:
//   - validate.ErrArity for 1, 2 or more than 3 arguments.
//   - validate.ErrInvalidNumber for unparsable or non-integral size.
//   - validate.ErrInvalidRange for unparsable, unordered or oversized bounds.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if err := validate.ExactArity("size min max", len(args), positionalArgs); err != nil {
		return err
	}

	size, err := parseNumber(args[0], "size", validate.ErrInvalidNumber)
	if err != nil {
		return err
	}
	min, err := parseNumber(args[1], validate.LabelMin, validate.ErrInvalidRange)
	if err != nil {
		return err
	}
	max, err := parseNumber(args[2], validate.LabelMax, validate.ErrInvalidRange)
	if err != nil {
		return err
	}

	if err = validate.PositiveInteger(size, "size"); err != nil {
		return err
	}
	if err = validate.Range(min, max); err != nil {
		return err
	}
	if err = integral(min, validate.LabelMin); err != nil {
		return err
	}
	if err = integral(max, validate.LabelMax); err != nil {
		return err
	}

	c.Size, c.Min, c.Max = int(size), int(min), int(max)

	return nil
}

// LowestPositive is the smallest positive value the generator can emit.
func (c Config) LowestPositive() int {
	if c.Min > rowstat.SmallestPositive {
		return c.Min
	}

	return rowstat.SmallestPositive
}

// YAML renders the configuration.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config: marshal: %w", err)
	}

	return string(out), nil
}

func parseNumber(s, label string, sentinel error) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number: %w", label, s, sentinel)
	}

	return v, nil
}

// integral expects a finite v; it also bounds |v| so the int conversion is exact.
func integral(v float64, label string) error {
	if math.Abs(v) > validate.MaxSafeInteger {
		return fmt.Errorf("%s: exceeds the maximum safe integer, got %v: %w", label, v, validate.ErrInvalidRange)
	}
	if v != math.Trunc(v) {
		return fmt.Errorf("%s: must be an integer, got %v: %w", label, v, validate.ErrInvalidRange)
	}

	return nil
}
