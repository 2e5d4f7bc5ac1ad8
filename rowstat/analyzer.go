// SPDX-License-Identifier: MIT
// Package: signtable/rowstat
//
// analyzer.go — Analyzer bundles the two row statistics under one
// configuration so the table layer calls a single method per row.

package rowstat

import (
	"fmt"

	"github.com/katalvlaran/signtable/validate"
)

const methodNewAnalyzer = "NewAnalyzer"

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithMaxRun sets the forbidden run length. Validated by NewAnalyzer.
func WithMaxRun(k int) Option {
	return func(a *Analyzer) {
		a.maxRun = k
	}
}

// WithLowestPositive sets the smallest positive value the rows can contain,
// enabling an earlier exit in MinPositiveFrom. Values below
// SmallestPositive are treated as SmallestPositive.
func WithLowestPositive(v int) Option {
	return func(a *Analyzer) {
		a.lowest = v
	}
}

// Analyzer computes Summary values for rows. It holds no per-row state and
// may be reused for any number of rows.
type Analyzer struct {
	maxRun int
	lowest int
}

// NewAnalyzer applies opts over the defaults (DefaultMaxRun, SmallestPositive).
//
// Errors:
//   - validate.ErrInvalidNumber if the run length is below MinRunLength.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{maxRun: DefaultMaxRun, lowest: SmallestPositive}
	for _, opt := range opts {
		opt(a)
	}
	if err := validate.PositiveInteger(float64(a.maxRun), "maxRun"); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewAnalyzer, err)
	}
	if a.maxRun < MinRunLength {
		return nil, fmt.Errorf("%s: maxRun=%d < min=%d: %w",
			methodNewAnalyzer, a.maxRun, MinRunLength, validate.ErrInvalidNumber)
	}
	if a.lowest < SmallestPositive {
		a.lowest = SmallestPositive
	}

	return a, nil
}

// MaxRun reports the configured forbidden run length.
func (a *Analyzer) MaxRun() int {
	return a.maxRun
}

// Summarize returns the minimum positive value and the minimum number of
// replacements for row. Complexity: O(len(row)·maxRun²).
func (a *Analyzer) Summarize(row []int) (Summary, error) {
	n, err := MinReplacements(row, a.maxRun)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		MinPositive:  MinPositiveFrom(row, a.lowest),
		Replacements: n,
	}, nil
}
