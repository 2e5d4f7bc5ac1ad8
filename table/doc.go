// Package table lays out an analysed matrix as aligned text lines.
//
// A single pass over the matrix yields the per-column display widths and
// the set of rows holding the matrix-wide minimum. Each row is then summarised
// by a rowstat.Analyzer and formatted as
//
//	| |  -3 | 100 |   7 | minimum positive | replacements |    header
//	|*|  -3 | -99 |  12 |               12 |            0 |    row with the minimum
//	| |  15 |   4 |  -1 |                4 |            0 |
//
// Numeric cells are right-aligned to their column width, summary cells to
// the width of their labels. Build returns the lines together with the
// presentation hint ("underline") for each; rendering is left to the caller.
package table
