// SPDX-License-Identifier: MIT
// Package: signtable/render

package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/signtable/table"
)

// ColorMode selects when presentation attributes are emitted.
type ColorMode string

const (
	// ColorAuto emits attributes only when the writer is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI attributes.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// ErrUnknownColorMode is returned by ParseColorMode for unsupported values.
var ErrUnknownColorMode = errors.New("render: unknown color mode")

// ParseColorMode converts a flag value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownColorMode)
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithColorMode sets the attribute policy. Default: ColorAuto.
func WithColorMode(m ColorMode) Option {
	return func(r *Renderer) {
		r.mode = m
	}
}

// Renderer prints lines in order, one per output line.
type Renderer struct {
	w         io.Writer
	mode      ColorMode
	underline lipgloss.Style
}

// New returns a Renderer bound to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, mode: ColorAuto}
	for _, opt := range opts {
		opt(r)
	}

	lr := lipgloss.NewRenderer(w)
	switch r.mode {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) {
			lr.SetColorProfile(termenv.Ascii)
		}
	}
	r.underline = lr.NewStyle().Underline(true)

	return r
}

// Render writes every line followed by a newline. Underlined lines are
// wrapped with the underline attribute. It stops at the first write error.
func (r *Renderer) Render(lines []table.Line) error {
	for i, l := range lines {
		text := l.Text
		if l.Underline {
			text = r.underline.Render(text)
		}
		if _, err := fmt.Fprintln(r.w, text); err != nil {
			return fmt.Errorf("render: line %d: %w", i, err)
		}
	}

	return nil
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
