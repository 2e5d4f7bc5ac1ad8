// SPDX-License-Identifier: MIT
// Package: signtable/rowstat

package rowstat

// MinPositive returns the smallest strictly positive element of row, or an
// absent Positive if there is none. The scan stops early on SmallestPositive.
//
// Complexity: O(len(row)) time, O(1) space.
func MinPositive(row []int) Positive {
	return MinPositiveFrom(row, SmallestPositive)
}

// MinPositiveFrom is MinPositive with an explicit smallest possible positive
// value. When the generator never produces anything below lowest (e.g. its
// lower bound is 5), the scan may stop as soon as lowest is seen.
// Values of lowest below SmallestPositive are raised to it.
//
// The early exit is only sound if no element of row lies in (0, lowest).
func MinPositiveFrom(row []int, lowest int) Positive {
	if lowest < SmallestPositive {
		lowest = SmallestPositive
	}

	var best Positive
	for _, v := range row {
		if v <= 0 || (best.Ok && v >= best.Value) {
			continue
		}
		best = Positive{Value: v, Ok: true}
		if v <= lowest {
			return best
		}
	}

	return best
}
