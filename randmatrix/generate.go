// SPDX-License-Identifier: MIT
// Package: signtable/randmatrix
//
// generate.go — Generate and Sample.
//
// Contract:
//   - size must pass validate.PositiveInteger (else validate.ErrInvalidNumber).
//   - (min, max) must pass validate.Range (else validate.ErrInvalidRange).
//   - Validation errors are returned unchanged except for a method prefix;
//     errors.Is keeps working.
//   - No partial result: on error the returned Matrix is nil.
//
// Determinism:
//   - Cells are drawn row by row, left to right; a fixed seed gives a fixed matrix.

package randmatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/signtable/validate"
)

const (
	methodGenerate = "Generate"
	methodSample   = "Sample"
	labelSize      = "size"
)

// Generate returns a size×size matrix of independent uniform integers in
// [min, max] inclusive.
//
// Complexity: O(size²) time and space.
func Generate(size, min, max int, opts ...Option) (Matrix, error) {
	if err := validate.PositiveInteger(float64(size), labelSize); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if err := validate.Range(float64(min), float64(max)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	cfg := newConfig(opts...)

	m := make(Matrix, size)
	for i := 0; i < size; i++ {
		row := make([]int, size)
		for j := range row {
			row[j] = sample(cfg.src, min, max)
		}
		m[i] = row
	}

	return m, nil
}

// Sample draws one uniform integer in [min, max] from src.
func Sample(src Source, min, max int) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%s: %w", methodSample, ErrNilSource)
	}
	if err := validate.Range(float64(min), float64(max)); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}

	return sample(src, min, max), nil
}

// sample assumes a validated range. The span is computed in float64 so
// that it cannot overflow int for extreme bounds.
func sample(src Source, min, max int) int {
	span := float64(max) - float64(min) + 1
	offset := int(math.Floor(src.Float64() * span))
	// Guards against u*span rounding up to span for u just below 1.
	if float64(offset) >= span {
		offset = int(span) - 1
	}

	return min + offset
}
