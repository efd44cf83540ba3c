package layout

import (
	"strings"

	"github.com/unkn0wn-root/typeset/internal/metrics"
)

// Justify stretches inter-word spacing so every row except the last exactly
// fills maxWidth. The input layout is left untouched; a new layout is
// returned so cached layouts stay valid.
//
// Extra width is distributed across interior single-space boundaries only: a
// space whose neighbours on both sides are non-space characters. Leading and
// trailing whitespace never receives extra width. Rows without such a
// boundary (a single long word, for instance) are returned unchanged.
func Justify(m metrics.Measurer, l Layout, maxWidth int) Layout {
	if maxWidth <= 0 || l.Rows() < 2 {
		return l
	}

	out := l.clone()
	spaceAdv := metrics.SpaceAdvance(m)

	for r := 1; r < out.Rows(); r++ {
		justifyRow(&out, r, maxWidth, spaceAdv)
	}
	return out
}

func justifyRow(l *Layout, row, maxWidth, spaceAdv int) {
	sec := l.Section(row)

	last := lastVisibleIndex(*l, sec)
	if last == 0 {
		return
	}
	extra := maxWidth - l.Cell(last).XEnd
	if extra <= 0 {
		return
	}

	gaps := gapIndices(*l, sec, last)
	if len(gaps) == 0 {
		return
	}

	base := extra / len(gaps)
	rem := extra % len(gaps)

	// Widen each gap left to right, pushing everything to its right along
	// by the accumulated amount.
	shift := 0
	next := 0
	var padded strings.Builder
	lineRunes := []rune(l.Lines[row-1])
	runeAt := 0

	for i := sec.First; i <= sec.Last; i++ {
		c := &l.Chars[i-1]
		c.XStart += shift
		added := 0
		if next < len(gaps) && i == gaps[next] {
			added = base
			if next < rem {
				added++
			}
			shift += added
			next++
		}
		c.XEnd += shift

		if runeAt < len(lineRunes) {
			padded.WriteRune(lineRunes[runeAt])
			runeAt++
		}
		if added > 0 && spaceAdv > 0 {
			k := (added + spaceAdv/2) / spaceAdv
			padded.WriteString(strings.Repeat(" ", k))
		}
	}
	for runeAt < len(lineRunes) {
		padded.WriteRune(lineRunes[runeAt])
		runeAt++
	}

	l.Lines[row-1] = padded.String()
}

// lastVisibleIndex finds the last cell of the row that carries ink, skipping
// the sentinel, any hard newline and trailing break spaces. Returns 0 for a
// row with no visible glyph.
func lastVisibleIndex(l Layout, sec Section) int {
	for i := sec.Last; i >= sec.First; i-- {
		c := l.Cell(i)
		if c.Glyph != 0 && c.Glyph != '\n' && c.Glyph != ' ' {
			return i
		}
	}
	return 0
}

// gapIndices collects the distributable boundaries of a row: every space
// strictly inside the row whose neighbours are both non-space glyphs.
func gapIndices(l Layout, sec Section, last int) []int {
	var gaps []int
	for i := sec.First + 1; i < last; i++ {
		if l.Cell(i).Glyph != ' ' {
			continue
		}
		if l.Cell(i-1).Glyph == ' ' || l.Cell(i+1).Glyph == ' ' {
			continue
		}
		gaps = append(gaps, i)
	}
	return gaps
}
