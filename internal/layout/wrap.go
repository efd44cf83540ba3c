package layout

import (
	"github.com/unkn0wn-root/typeset/internal/metrics"
)

// Options constrain the line breaker. Zero values mean "unbounded": a
// single-line field wraps with no MaxWidth and no MaxChars at all.
type Options struct {
	// LetterSpacing is added to every glyph advance, in pixels.
	LetterSpacing int

	// MaxWidth is the pixel budget of one row. <= 0 disables width breaking.
	MaxWidth int

	// MaxChars is the character budget of one row. <= 0 disables it.
	MaxChars int

	// WholeWords breaks at the last space before an overflow instead of
	// splitting the overflowing word, when the row contains a space.
	WholeWords bool
}

// Wrap lays out text into rows under the given constraints. It is a pure
// function of its inputs: no state survives between calls.
//
// Every codepoint becomes one Cell; a hard newline closes its row and is
// kept as a zero-width cell at the row's end. A zero-width sentinel cell is
// appended after the last character so the caret can sit past the text.
func Wrap(m metrics.Measurer, text string, opts Options) Layout {
	var (
		cells []Cell
		lines []string
		cur   []rune

		row      = 1
		col      = 1
		x        = 0
		rowStart = 0 // index into cells where the current row begins
	)

	for _, r := range text {
		if r == '\n' {
			cells = append(cells, Cell{Row: row, Col: col, XStart: x, XEnd: x, Glyph: r})
			cur = append(cur, r)
			lines = append(lines, string(cur))
			cur = cur[:0:0]
			row++
			col = 1
			x = 0
			rowStart = len(cells)
			continue
		}

		w := m.MeasureBounds(string(r)).Width + opts.LetterSpacing

		switch {
		case opts.MaxChars > 0 && col > opts.MaxChars,
			opts.MaxWidth > 0 && col > 1 && x+w > opts.MaxWidth:
			if opts.WholeWords {
				if r == ' ' {
					// An overflowing space closes its own row as the
					// trailing break; the words before it stay together.
					cells = append(cells, Cell{Row: row, Col: col, XStart: x, XEnd: x + w, Glyph: r})
					cur = append(cur, r)
					lines = append(lines, string(cur))
					cur = cur[:0:0]
					row++
					col = 1
					x = 0
					rowStart = len(cells)
					continue
				}
				if si := lastSpaceIndex(cells, rowStart); si >= 0 {
					cells, cur, lines, row, col, x, rowStart = carryFragment(cells, cur, lines, rowStart, si, row)
					break
				}
			}
			lines = append(lines, string(cur))
			cur = cur[:0:0]
			row++
			col = 1
			x = 0
			rowStart = len(cells)
		}

		cells = append(cells, Cell{Row: row, Col: col, XStart: x, XEnd: x + w, Glyph: r})
		cur = append(cur, r)
		x += w
		col++
	}
	lines = append(lines, string(cur))

	cells = append(cells, sentinelAfter(cells))

	return Layout{Chars: cells, Sections: sectionsOf(cells), Lines: lines}
}

// lastSpaceIndex returns the cells index of the last space in the current
// row, or -1 when the row has none.
func lastSpaceIndex(cells []Cell, rowStart int) int {
	for i := len(cells) - 1; i >= rowStart; i-- {
		if cells[i].Glyph == ' ' {
			return i
		}
	}
	return -1
}

// carryFragment breaks the current row after the space at cells[si]. The
// trailing fragment moves to the next row with its x-offsets rebased to 0.
func carryFragment(cells []Cell, cur []rune, lines []string, rowStart, si, row int) ([]Cell, []rune, []string, int, int, int, int) {
	spaceOffset := si - rowStart

	lines = append(lines, string(cur[:spaceOffset+1]))
	frag := append([]rune(nil), cur[spaceOffset+1:]...)

	x := 0
	col := 1
	if si+1 < len(cells) {
		sub := cells[si+1].XStart
		for i := si + 1; i < len(cells); i++ {
			cells[i].Row = row + 1
			cells[i].Col = col
			cells[i].XStart -= sub
			cells[i].XEnd -= sub
			x = cells[i].XEnd
			col++
		}
	}

	return cells, frag, lines, row + 1, col, x, si + 1
}

func sentinelAfter(cells []Cell) Cell {
	if len(cells) == 0 {
		return Cell{Row: 1, Col: 1}
	}
	last := cells[len(cells)-1]
	if last.Glyph == '\n' {
		return Cell{Row: last.Row + 1, Col: 1}
	}
	return Cell{Row: last.Row, Col: last.Col + 1, XStart: last.XEnd, XEnd: last.XEnd}
}

func sectionsOf(cells []Cell) []Section {
	var sections []Section
	for i, c := range cells {
		idx := i + 1
		for len(sections) < c.Row {
			sections = append(sections, Section{First: idx, Last: idx})
		}
		sections[c.Row-1].Last = idx
	}
	return sections
}
