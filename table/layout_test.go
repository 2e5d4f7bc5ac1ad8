package table_test

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signtable/randmatrix"
	"github.com/katalvlaran/signtable/rowstat"
	"github.com/katalvlaran/signtable/table"
)

// fixture has a tie for the minimum in rows 0 and 1.
var fixture = [][]int{
	{-100, 2, 3},
	{5, -1, -100},
	{99, 7, 0},
}

func newAnalyzer(t *testing.T) *rowstat.Analyzer {
	t.Helper()
	an, err := rowstat.NewAnalyzer()
	require.NoError(t, err)
	return an
}

// TestBuild_Golden pins the exact rendering of a small table.
func TestBuild_Golden(t *testing.T) {
	tbl, err := table.Build(fixture, newAnalyzer(t))
	require.NoError(t, err)

	want := []table.Line{
		{Text: strings.Repeat(" ", 55), Underline: true},
		{Text: "| |      |    |      | minimum positive | replacements |", Underline: true},
		{Text: "|*| -100 |  2 |    3 |                2 |            0 |"},
		{Text: "|*|    5 | -1 | -100 |                5 |            0 |"},
		{Text: "| |   99 |  7 |    0 |                7 |            0 |", Underline: true},
	}
	assert.Equal(t, want, tbl.Lines)
	assert.Equal(t, []int{4, 2, 4}, tbl.Widths)
	assert.Equal(t, -100, tbl.Min)
	assert.True(t, tbl.Marked(0))
	assert.True(t, tbl.Marked(1))
	assert.False(t, tbl.Marked(2))
}

// TestBuild_SummariesAndNoneMarker checks the summary columns.
func TestBuild_SummariesAndNoneMarker(t *testing.T) {
	m := [][]int{
		{-1, -2, -3},
		{1, 2, 3},
		{0, 0, 0},
	}
	tbl, err := table.Build(m, newAnalyzer(t))
	require.NoError(t, err)

	assert.Equal(t, rowstat.Summary{Replacements: 1}, tbl.Summaries[0])
	assert.Equal(t, rowstat.Summary{MinPositive: rowstat.Positive{Value: 1, Ok: true}, Replacements: 1}, tbl.Summaries[1])
	assert.Equal(t, rowstat.Summary{}, tbl.Summaries[2])

	assert.Contains(t, tbl.Lines[2].Text, "|                - |            1 |")
}

// TestBuild_CustomLabelsAlign verifies alignment with multi-byte labels.
func TestBuild_CustomLabelsAlign(t *testing.T) {
	tbl, err := table.Build(fixture, newAnalyzer(t), table.WithLabels("минимальное положительное", "замен"))
	require.NoError(t, err)

	header := tbl.Lines[1].Text
	assert.True(t, strings.HasSuffix(header, "| минимальное положительное | замен |"))
	for _, l := range tbl.Lines[2:] {
		assert.Equal(t, runewidth.StringWidth(header), runewidth.StringWidth(l.Text), "line %q", l.Text)
	}
	assert.True(t, strings.HasSuffix(tbl.Lines[2].Text, "|     0 |"))
}

// TestBuild_WithLabelsKeepsDefaults checks empty overrides are ignored.
func TestBuild_WithLabelsKeepsDefaults(t *testing.T) {
	tbl, err := table.Build(fixture, newAnalyzer(t), table.WithLabels("", "fixes"))
	require.NoError(t, err)
	assert.Contains(t, tbl.Lines[1].Text, "| "+table.DefaultMinPositiveLabel+" | fixes |")
}

// TestBuild_RejectsBadShape covers empty, ragged and rectangular input.
func TestBuild_RejectsBadShape(t *testing.T) {
	an := newAnalyzer(t)
	for name, m := range map[string][][]int{
		"empty":       {},
		"ragged":      {{1, 2}, {3}},
		"rectangular": {{1, 2, 3}, {4, 5, 6}},
	} {
		tbl, err := table.Build(m, an)
		assert.ErrorIs(t, err, table.ErrNotSquare, name)
		assert.Nil(t, tbl, name)
	}

	tbl, err := table.Build(fixture, nil)
	assert.ErrorIs(t, err, table.ErrNilAnalyzer)
	assert.Nil(t, tbl)
}

// TestColumnWidths covers negative values and the sign character.
func TestColumnWidths(t *testing.T) {
	m := [][]int{{-100}, {5}, {99}}
	assert.Equal(t, []int{4}, table.ColumnWidths(m))
	assert.Nil(t, table.ColumnWidths(nil))
}

// TestMinRowSet_MatchesBruteForce compares against a two-pass scan.
func TestMinRowSet_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m, err := randmatrix.Generate(8, -5, 5, randmatrix.WithSeed(seed))
		require.NoError(t, err)

		min := m[0][0]
		for _, row := range m {
			for _, v := range row {
				if v < min {
					min = v
				}
			}
		}
		want := map[int]struct{}{}
		for i, row := range m {
			for _, v := range row {
				if v == min {
					want[i] = struct{}{}
				}
			}
		}

		gotMin, gotRows := table.MinRowSet(m)
		assert.Equal(t, min, gotMin, "seed %d", seed)
		assert.Equal(t, want, gotRows, "seed %d", seed)

		tbl, err := table.Build(m, newAnalyzer(t))
		require.NoError(t, err)
		for i := range m {
			_, marked := want[i]
			assert.Equal(t, marked, strings.HasPrefix(tbl.Lines[i+2].Text, "|*"), "seed %d row %d", seed, i)
		}
	}
}

// TestTable_String joins lines without attributes.
func TestTable_String(t *testing.T) {
	tbl, err := table.Build([][]int{{1}}, newAnalyzer(t))
	require.NoError(t, err)

	lines := strings.Split(tbl.String(), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "|*| 1 |                1 |            0 |", lines[2])
}
