// Package render writes table lines to a terminal or any io.Writer,
// translating the "underline" hint into the output's presentation
// convention through lipgloss.
package render
