// Package rowstat computes the per-row summaries printed next to every
// matrix row: the smallest strictly positive value, and the minimum number
// of single-element replacements that leaves no run of maxRun or more
// consecutive same-sign elements.
//
// 🚀 Minimum replacements
//
//	Walk the row left to right carrying (posRun, negRun), the lengths of the
//	current positive and negative runs (at most one is non-zero). Each
//	element may either keep its sign for free or be replaced (cost 1) by a
//	value of the opposite sign; zero may be replaced by either sign. A state
//	whose run reaches maxRun is infeasible (+∞). Zero, kept as-is, resets
//	both counters.
//
//	cost(n, ·, ·)   = 0
//	cost(i, p, q)   = min over admissible moves of move + cost(i+1, p', q')
//
//	The answer is cost(0, 0, 0).
//
// Because run counters never exceed maxRun−1, the table has
// (len(row)+1)·maxRun² cells and is filled bottom-up in
// O(len(row)·maxRun²) time. The table is allocated per call and dropped with
// the result; nothing is cached across rows.
//
// ⚙️ Usage:
//
//	n, err := rowstat.MinReplacements([]int{1, 2, 3, -1, -2, -3, 0}, rowstat.DefaultMaxRun)
//	// n == 2
//
//	an, _ := rowstat.NewAnalyzer(rowstat.WithMaxRun(3))
//	s, _ := an.Summarize(row) // s.MinPositive, s.Replacements
package rowstat
