// SPDX-License-Identifier: MIT
// Package: signtable/validate
//
// validators.go — the single source of truth for numeric guards.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//  - Composite checks follow a fixed order (Finite → Integer → Sign → Magnitude).

package validate

import (
	"math"
)

// MaxSafeInteger is the largest integer n such that n and n+1 are both
// exactly representable as float64 (2^53 − 1).
const MaxSafeInteger = 1<<53 - 1

// Labels used by Range for its two bounds.
const (
	LabelMin = "min"
	LabelMax = "max"
)

// Finite fails with ErrInvalidNumber if value is NaN or ±Inf.
// Complexity: O(1).
func Finite(value float64, label string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return validatorErrorf(label, ErrInvalidNumber, "must be a finite number, got %v", value)
	}

	return nil
}

// PositiveInteger fails with ErrInvalidNumber unless value is a finite
// integer in [1, MaxSafeInteger].
//
// Order of checks: finiteness, integrality, sign, magnitude; the first
// violated constraint is reported.
// Complexity: O(1).
func PositiveInteger(value float64, label string) error {
	if err := Finite(value, label); err != nil {
		return err
	}
	if value != math.Trunc(value) {
		return validatorErrorf(label, ErrInvalidNumber, "must be an integer, got %v", value)
	}
	if value <= 0 {
		return validatorErrorf(label, ErrInvalidNumber, "must be greater than 0, got %v", value)
	}
	if value > MaxSafeInteger {
		return validatorErrorf(label, ErrInvalidNumber, "exceeds the maximum safe integer %d, got %v", int64(MaxSafeInteger), value)
	}

	return nil
}

// Range fails with ErrInvalidRange if either bound is non-finite, if
// min >= max, or if the inclusive span max-min+1 exceeds MaxSafeInteger.
// Complexity: O(1).
func Range(min, max float64) error {
	if math.IsNaN(min) || math.IsInf(min, 0) {
		return validatorErrorf(LabelMin, ErrInvalidRange, "must be a finite number, got %v", min)
	}
	if math.IsNaN(max) || math.IsInf(max, 0) {
		return validatorErrorf(LabelMax, ErrInvalidRange, "must be a finite number, got %v", max)
	}
	if min >= max {
		return validatorErrorf("range", ErrInvalidRange, "min must be less than max, got [%v, %v]", min, max)
	}
	// Computed in float64: exact while the span stays below 2^53, and
	// saturates towards +Inf (still rejected) beyond that.
	if max-min+1 > MaxSafeInteger {
		return validatorErrorf("range", ErrInvalidRange, "span of [%v, %v] exceeds the maximum safe integer", min, max)
	}

	return nil
}

// Arity fails with ErrArity if got < want.
func Arity(op string, got, want int) error {
	if got < want {
		return validatorErrorf(op, ErrArity, "requires %d parameters, got %d", want, got)
	}

	return nil
}

// ExactArity fails with ErrArity unless got == want.
func ExactArity(op string, got, want int) error {
	if got != want {
		return validatorErrorf(op, ErrArity, "requires exactly %d parameters, got %d", want, got)
	}

	return nil
}
