// Package layout turns raw text plus font metrics into a wrapped,
// pixel-positioned character table. Layouts are immutable value objects:
// every transformation (wrapping, justification) produces a fresh table, so
// callers can cache or diff them without defensive copies.
package layout

// Cell is one entry of the per-codepoint position table. Rows and columns
// are 1-based. XStart/XEnd are cumulative pixel offsets within the cell's
// row, before any scrolling is applied.
type Cell struct {
	Row    int
	Col    int
	XStart int
	XEnd   int
	Glyph  rune
}

// Section is the inclusive 1-based character-index range covered by one
// wrapped row. Sections are parallel to Layout.Lines.
type Section struct {
	First int
	Last  int
}

// Layout is the full wrapped form of a text: one Cell per codepoint plus a
// trailing zero-width sentinel, one Section and one Line string per row.
// Character indices run 1..Count()+1; index Count()+1 is the sentinel that
// represents the caret slot after the last character.
type Layout struct {
	Chars    []Cell
	Sections []Section
	Lines    []string
}

// Count returns the number of real characters, excluding the sentinel.
func (l Layout) Count() int {
	if len(l.Chars) == 0 {
		return 0
	}
	return len(l.Chars) - 1
}

// Cell returns the cell at 1-based index i. Index Count()+1 is the sentinel.
func (l Layout) Cell(i int) Cell {
	return l.Chars[i-1]
}

// Rows returns the number of wrapped rows.
func (l Layout) Rows() int {
	return len(l.Sections)
}

// Section returns the section for 1-based row r.
func (l Layout) Section(r int) Section {
	return l.Sections[r-1]
}

// HasRow reports whether row r exists in the layout.
func (l Layout) HasRow(r int) bool {
	return r >= 1 && r <= len(l.Sections)
}

// RowWidth returns the pixel extent of row r, the XEnd of its last cell.
func (l Layout) RowWidth(r int) int {
	sec := l.Section(r)
	return l.Cell(sec.Last).XEnd
}

// Width returns the widest row extent of the layout.
func (l Layout) Width() int {
	w := 0
	for r := 1; r <= l.Rows(); r++ {
		if rw := l.RowWidth(r); rw > w {
			w = rw
		}
	}
	return w
}

// Height returns the layout height in pixels for the given line height.
func (l Layout) Height(lineHeight int) int {
	return l.Rows() * lineHeight
}

// RowOf returns the row containing 1-based character index i.
func (l Layout) RowOf(i int) int {
	return l.Cell(i).Row
}

func (l Layout) clone() Layout {
	out := Layout{
		Chars:    make([]Cell, len(l.Chars)),
		Sections: make([]Section, len(l.Sections)),
		Lines:    make([]string, len(l.Lines)),
	}
	copy(out.Chars, l.Chars)
	copy(out.Sections, l.Sections)
	copy(out.Lines, l.Lines)
	return out
}
