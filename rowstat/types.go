// SPDX-License-Identifier: MIT
// Package: signtable/rowstat
//
// types.go — sentinels, constants and result types.

package rowstat

import (
	"strconv"
)

const (
	// DefaultMaxRun is the forbidden run length used when none is configured:
	// three consecutive same-sign numbers are not allowed.
	DefaultMaxRun = 3

	// MinRunLength is the smallest meaningful forbidden run length. With 1,
	// every non-zero element is already a forbidden run and replacements,
	// which always commit to a sign, cannot fix it.
	MinRunLength = 2

	// SmallestPositive is the smallest possible positive integer. MinPositive
	// stops scanning as soon as it sees it.
	SmallestPositive = 1

	// NoneMarker is how an absent minimum positive value is rendered.
	NoneMarker = "-"
)

// Positive is an optional positive integer: Ok reports presence.
type Positive struct {
	Value int
	Ok    bool
}

// String renders the value, or NoneMarker when absent.
func (p Positive) String() string {
	if !p.Ok {
		return NoneMarker
	}

	return strconv.Itoa(p.Value)
}

// Summary is the pair printed after every table row.
type Summary struct {
	MinPositive  Positive
	Replacements int
}
