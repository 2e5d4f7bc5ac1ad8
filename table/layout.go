// SPDX-License-Identifier: MIT
// Package: signtable/table
//
// layout.go — widths, minimum-row detection and line formatting.
//
// Determinism:
//   - Rows are emitted in matrix order; ties for the minimum are all marked.
//
// Complexity:
//   - Time O(N²·maxRun²) dominated by the per-row analysis; O(N²) for layout.

package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/signtable/rowstat"
)

const methodBuild = "Build"

// Build analyses every row of m with an and formats the table.
//
// Errors:
//   - ErrNotSquare for empty or non-square m.
//   - ErrNilAnalyzer if an is nil.
//   - any error returned by an.Summarize (wrapped with the row index).
//
// No partial result is returned on error.
func Build(m [][]int, an *rowstat.Analyzer, opts ...Option) (*Table, error) {
	if err := validateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if an == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilAnalyzer)
	}
	cfg := newConfig(opts...)

	t := &Table{
		Widths:    ColumnWidths(m),
		Summaries: make([]rowstat.Summary, len(m)),
	}
	t.Min, t.MinRows = MinRowSet(m)

	for i, row := range m {
		s, err := an.Summarize(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodBuild, i, err)
		}
		t.Summaries[i] = s
	}

	f := formatter{
		widths:  t.Widths,
		minW:    runewidth.StringWidth(cfg.minPositiveLabel),
		replW:   runewidth.StringWidth(cfg.replacementsLabel),
		blank:   make([]string, len(m)),
		numbers: make([]string, len(m)),
	}

	header := markPlain + f.format(f.blank, cfg.minPositiveLabel, cfg.replacementsLabel)
	t.Lines = make([]Line, 0, len(m)+2)
	t.Lines = append(t.Lines,
		Line{Text: spacer(header), Underline: true},
		Line{Text: header, Underline: true},
	)

	last := len(m) - 1
	for i, row := range m {
		mark := markPlain
		if t.Marked(i) {
			mark = markMin
		}
		for j, v := range row {
			f.numbers[j] = strconv.Itoa(v)
		}
		text := mark + f.format(f.numbers,
			runewidth.FillLeft(t.Summaries[i].MinPositive.String(), f.minW),
			runewidth.FillLeft(strconv.Itoa(t.Summaries[i].Replacements), f.replW),
		)
		t.Lines = append(t.Lines, Line{Text: text, Underline: i == last})
	}

	return t, nil
}

// ColumnWidths returns, per column, the longest decimal rendering (sign
// included) of any value in that column. Columns are taken from the first
// row; shorter rows contribute nothing to missing columns.
func ColumnWidths(m [][]int) []int {
	if len(m) == 0 {
		return nil
	}
	widths := make([]int, len(m[0]))
	for _, row := range m {
		for j, v := range row {
			if j >= len(widths) {
				break
			}
			if w := len(strconv.Itoa(v)); w > widths[j] {
				widths[j] = w
			}
		}
	}

	return widths
}

// MinRowSet scans m once and returns its minimum value and every row index
// containing it. For an empty matrix it returns (0, empty set).
func MinRowSet(m [][]int) (int, map[int]struct{}) {
	rows := make(map[int]struct{})
	min, seen := 0, false
	for i, row := range m {
		for _, v := range row {
			switch {
			case !seen || v < min:
				min, seen = v, true
				rows = map[int]struct{}{i: {}}
			case v == min:
				rows[i] = struct{}{}
			}
		}
	}

	return min, rows
}

// formatter renders one line body; it reuses its cell buffers across rows.
type formatter struct {
	widths  []int
	minW    int
	replW   int
	blank   []string
	numbers []string
}

// format pads cells to their column widths and appends the two summary
// fields, which the caller has already aligned.
func (f formatter) format(cells []string, minPositive, replacements string) string {
	var b strings.Builder
	b.WriteString(rowOpen)
	for j, c := range cells {
		if j > 0 {
			b.WriteString(cellSep)
		}
		b.WriteString(runewidth.FillLeft(c, f.widths[j]))
	}
	b.WriteString(cellSep)
	b.WriteString(minPositive)
	b.WriteString(cellSep)
	b.WriteString(replacements)
	b.WriteString(rowClose)

	return b.String()
}

// spacer returns the blank line drawn above the header: one cell shorter
// than the header so the underline forms the table's top rule.
func spacer(header string) string {
	n := runewidth.StringWidth(header) - 1
	if n < 0 {
		n = 0
	}

	return strings.Repeat(spacerFill, n)
}

// validateSquare ensures m is non-empty and every row has len(m) elements.
func validateSquare(m [][]int) error {
	if len(m) == 0 {
		return ErrNotSquare
	}
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(m), ErrNotSquare)
		}
	}

	return nil
}
