// Package signtable prints random signed-integer matrices as annotated
// tables and hosts the row analytics behind them.
//
// 🚀 What does a row get?
//
//   - the smallest strictly positive value (or "-" when there is none);
//   - the minimum number of entries to replace so that no run of maxRun
//     (default 3) consecutive numbers shares a sign, zero breaking runs.
//
// Rows holding the matrix-wide minimum are marked with '*'.
//
// Under the hood:
//
//	validate/   — numeric precondition checks and their sentinel errors
//	randmatrix/ — N×N uniform integer matrices from a pluggable [0,1) source
//	rowstat/    — MinPositive and the MinReplacements dynamic program
//	table/      — column widths, minimum-row marking, line formatting
//	render/     — underline-aware output through lipgloss
//	config/     — program parameters, positional arguments, YAML dump
//	logger/     — logrus logger for the command line
//	cmd/        — the signtable command
//
//	go install github.com/katalvlaran/signtable/cmd/signtable@latest
package signtable
