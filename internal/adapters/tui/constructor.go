// Package tui provides the live terminal dashboard of the render loop.
package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const defaultMaxSpans = 8

// NewModel creates a dashboard model writing to w and steering the loop
// through controls. A nil controls ignores key bindings that act on the view.
func NewModel(w io.Writer, controls Controls) Model {
	out := NewOutput(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Controls: controls,
		Output:   out,
		Nodes:    make([]string, 0),
		Spans:    make([]SpanRow, 0, defaultMaxSpans),
		MaxSpans: defaultMaxSpans,
	}
}
