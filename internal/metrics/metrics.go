// Package metrics abstracts font measurement away from the layout engine.
// The engine only ever asks for ink bounds of a string; everything else
// (pixel line breaking, justification gaps) is derived from that query.
package metrics

import (
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Bounds is the ink bounding box of a rendered string, in pixels.
type Bounds struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Measurer is a pure function of font + string. Implementations must be
// deterministic: the layout engine re-measures freely and assumes identical
// answers for identical input.
type Measurer interface {
	MeasureBounds(s string) Bounds

	// LineHeight is the vertical advance between rows.
	LineHeight() int
}

// Width is shorthand for the measured ink width of s.
func Width(m Measurer, s string) int {
	return m.MeasureBounds(s).Width
}

// SpaceAdvance reports the horizontal advance contributed by a single space.
// Ink bounds of a lone space are typically empty, so it is probed with a
// two-character string and the known width of the bracketing glyph.
func SpaceAdvance(m Measurer) int {
	with := m.MeasureBounds("| |").Width
	without := m.MeasureBounds("||").Width
	adv := with - without
	if adv <= 0 {
		adv = m.MeasureBounds("|").Width
	}
	return adv
}

// CellMeasurer maps text onto a monospace cell grid scaled to pixel units,
// the same cell arithmetic the terminal renderer uses. Wide runes occupy two
// cells, zero-width runes are promoted to one so every codepoint stays
// addressable by the caret.
type CellMeasurer struct {
	CellWidth  int
	CellHeight int
}

func NewCellMeasurer(cellWidth, cellHeight int) CellMeasurer {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	return CellMeasurer{CellWidth: cellWidth, CellHeight: cellHeight}
}

func (c CellMeasurer) MeasureBounds(s string) Bounds {
	cells := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if w <= 0 {
			w = 1
		}
		cells += w
	}
	return Bounds{Width: cells * c.CellWidth, Height: c.CellHeight}
}

func (c CellMeasurer) LineHeight() int {
	return c.CellHeight
}

// RuneCells reports the cell width of a single rune under the same promotion
// rule CellMeasurer applies.
func RuneCells(r rune) int {
	if w := rw.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// Fixed is a test measurer where every codepoint advances by the same width.
type Fixed struct {
	Advance int
	LineH   int
}

func (f Fixed) MeasureBounds(s string) Bounds {
	n := 0
	for range s {
		n++
	}
	return Bounds{Width: n * f.Advance, Height: f.LineH}
}

func (f Fixed) LineHeight() int {
	return f.LineH
}
