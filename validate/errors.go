// SPDX-License-Identifier: MIT
// Package: signtable/validate
//
// errors.go — sentinel errors for the validate package.
//
// Error policy:
//   • Only package-level sentinels are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Context (parameter label, offending value) is attached with %w.

package validate

import (
	"errors"
	"fmt"
)

// ErrInvalidNumber indicates a numeric parameter that is non-finite,
// non-integral where an integer is required, or outside its sign/magnitude
// domain.
var ErrInvalidNumber = errors.New("validate: invalid number")

// ErrInvalidRange indicates a (min, max) pair that is unordered or whose
// inclusive span overflows MaxSafeInteger.
var ErrInvalidRange = errors.New("validate: invalid range")

// ErrArity indicates that fewer (or, for exact checks, more) parameters were
// supplied than the operation requires.
var ErrArity = errors.New("validate: wrong number of parameters")

// validatorErrorf tags sentinel err with the parameter label and a formatted
// description of the violated constraint.
func validatorErrorf(label string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", label, fmt.Sprintf(format, args...), err)
}
