// SPDX-License-Identifier: MIT
// Package: signtable/rowstat
//
// replacements.go — bounded dynamic program over (index, posRun, negRun).
//
// Table layout (flat, row-local):
//
//	cost[i*k*k + p*k + q],  i ∈ [0, n], p, q ∈ [0, k)
//
// Infeasible successors (a run reaching k) read as +∞, so the threshold check
// lives in a single accessor instead of every transition.

package rowstat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/signtable/validate"
)

const methodMinReplacements = "MinReplacements"

// inf marks an infeasible state.
const inf = math.MaxInt

// MinReplacements returns the minimum number of elements of row that must be
// replaced so that no maxRun or more consecutive elements share a sign.
// Zero is neither positive nor negative and breaks runs.
//
// Errors:
//   - validate.ErrInvalidNumber if maxRun < MinRunLength.
//
// A run can never be longer than the row, so a threshold above len(row) is
// already satisfied and the table is never wider than len(row).
//
// Complexity: Time O(len(row)·k²), Space O(len(row)·k²), k = min(maxRun, len(row)).
func MinReplacements(row []int, maxRun int) (int, error) {
	if maxRun < MinRunLength {
		return 0, fmt.Errorf("%s: maxRun=%d < min=%d: %w",
			methodMinReplacements, maxRun, MinRunLength, validate.ErrInvalidNumber)
	}
	if maxRun > len(row) {
		return 0, nil
	}

	t := newRunTable(len(row), maxRun)
	for i := len(row) - 1; i >= 0; i-- {
		v := row[i]
		for p := 0; p < maxRun; p++ {
			for q := 0; q < maxRun; q++ {
				t.set(i, p, q, t.step(i, p, q, v))
			}
		}
	}

	return t.at(0, 0, 0), nil
}

// runTable is the per-row DP storage. The last layer (i == n) is the base
// case and stays zero.
type runTable struct {
	k    int
	cost []int
}

func newRunTable(n, k int) *runTable {
	return &runTable{k: k, cost: make([]int, (n+1)*k*k)}
}

// at reads cost(i, p, q); a run counter at the threshold is infeasible.
func (t *runTable) at(i, p, q int) int {
	if p >= t.k || q >= t.k {
		return inf
	}

	return t.cost[(i*t.k+p)*t.k+q]
}

func (t *runTable) set(i, p, q, c int) {
	t.cost[(i*t.k+p)*t.k+q] = c
}

// step evaluates every admissible move for element v entering state (i, p, q).
func (t *runTable) step(i, p, q, v int) int {
	var keep int
	switch {
	case v > 0:
		keep = t.at(i+1, p+1, 0)
	case v < 0:
		keep = t.at(i+1, 0, q+1)
	default:
		keep = t.at(i+1, 0, 0)
	}

	best := keep
	if v <= 0 {
		best = minCost(best, plusOne(t.at(i+1, p+1, 0)))
	}
	if v >= 0 {
		best = minCost(best, plusOne(t.at(i+1, 0, q+1)))
	}

	return best
}

// plusOne adds the cost of one replacement, saturating at inf.
func plusOne(c int) int {
	if c == inf {
		return inf
	}

	return c + 1
}

func minCost(a, b int) int {
	if a < b {
		return a
	}

	return b
}
