// SPDX-License-Identifier: MIT
// Package: signtable/table

package table

import (
	"errors"
	"strings"

	"github.com/katalvlaran/signtable/rowstat"
)

// ErrNotSquare is returned for empty, ragged or non-square input.
var ErrNotSquare = errors.New("table: matrix must be square and non-empty")

// ErrNilAnalyzer is returned when Build is called without a row analyzer.
var ErrNilAnalyzer = errors.New("table: analyzer is nil")

// Default summary column labels.
const (
	DefaultMinPositiveLabel  = "minimum positive"
	DefaultReplacementsLabel = "replacements"
)

// Delimiters and row markers.
const (
	cellSep    = " | "
	rowOpen    = "| "
	rowClose   = " |"
	markMin    = "|*"
	markPlain  = "| "
	spacerFill = " "
)

// Line is one output line plus its presentation hint.
type Line struct {
	Text      string
	Underline bool
}

// Table is the result of Build: derived layout data and the final lines
// (spacer, header, one per matrix row).
type Table struct {
	// Widths holds the display width of every numeric column.
	Widths []int
	// Min is the smallest value in the matrix.
	Min int
	// MinRows holds the indices of all rows containing Min.
	MinRows map[int]struct{}
	// Summaries holds the analyzer output per row.
	Summaries []rowstat.Summary
	// Lines is the formatted output in print order.
	Lines []Line
}

// Marked reports whether row i contains the matrix minimum.
func (t *Table) Marked(i int) bool {
	_, ok := t.MinRows[i]
	return ok
}

// String joins all lines with newlines, without presentation attributes.
func (t *Table) String() string {
	var b strings.Builder
	for i, l := range t.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Text)
	}

	return b.String()
}
