// SPDX-License-Identifier: MIT
// Package: signtable/randmatrix
//
// types.go — Matrix value type and the Source collaborator.

package randmatrix

import "errors"

// ErrNilSource is returned when a nil Source is supplied.
var ErrNilSource = errors.New("randmatrix: source is nil")

// Source supplies uniform samples in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Matrix is a square, row-major grid of integers. It is produced once by
// Generate and treated as immutable afterwards; Row returns an alias into
// the backing storage, not a copy.
type Matrix [][]int

// Size reports the matrix dimension N.
func (m Matrix) Size() int {
	return len(m)
}

// Row returns row i as an alias into m.
// Panics if i is out of range, like a slice index.
func (m Matrix) Row(i int) []int {
	return m[i]
}

// Clone returns a deep copy of m.
// Complexity: O(N²).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}

	return out
}
