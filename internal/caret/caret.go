// Package caret owns the caret position and selection of one editable text.
// It never touches the text itself: movement and hit-testing are resolved
// against an immutable layout handed in by the caller.
package caret

import (
	"github.com/unkn0wn-root/typeset/internal/errdef"
	"github.com/unkn0wn-root/typeset/internal/layout"
)

// Dir enumerates every caret movement the engine understands.
type Dir int

const (
	Left Dir = iota
	Right
	Up
	Down
	PageUp
	PageDown
	Home
	End
)

// Selection is a pair of 1-based character indices. Anchor may exceed
// Moving; normalization happens at the consumer, not in storage.
type Selection struct {
	Anchor int
	Moving int
}

// Empty reports whether the selection spans no characters.
func (s Selection) Empty() bool {
	return s.Anchor == s.Moving
}

// Normalized returns the selection bounds in ascending order.
func (s Selection) Normalized() (int, int) {
	if s.Anchor > s.Moving {
		return s.Moving, s.Anchor
	}
	return s.Anchor, s.Moving
}

// Model tracks the caret, the selection and the sticky column. The sticky
// column is the pixel x remembered across consecutive vertical moves; any
// horizontal move drops it.
type Model struct {
	Pos int
	Sel Selection

	stickyX   int
	hasSticky bool
}

// New returns a model with the caret at position 1.
func New() Model {
	return Model{Pos: 1, Sel: Selection{Anchor: 1, Moving: 1}}
}

// SetPos places the caret explicitly, collapsing the selection and clearing
// the sticky column. pos is clamped into [1, N+1].
func (m *Model) SetPos(l layout.Layout, pos int) {
	m.Pos = clamp(pos, 1, l.Count()+1)
	m.Sel = Selection{Anchor: m.Pos, Moving: m.Pos}
	m.hasSticky = false
}

// SetSelection stores the pair literally; order is preserved. The caret
// follows the moving end. Like SetPos, an explicit set drops the sticky
// column.
func (m *Model) SetSelection(l layout.Layout, anchor, moving int) {
	top := l.Count() + 1
	m.Sel = Selection{Anchor: clamp(anchor, 1, top), Moving: clamp(moving, 1, top)}
	m.Pos = m.Sel.Moving
	m.hasSticky = false
}

// ClearSticky drops the remembered vertical-navigation column.
func (m *Model) ClearSticky() {
	m.hasSticky = false
}

// HitTest maps layout-space pixel coordinates to a character index.
// Coordinates outside the laid-out rows produce a bounds error; callers
// fall back to the previous caret position.
func HitTest(l layout.Layout, x, y, lineHeight int) (int, error) {
	if lineHeight <= 0 {
		return 0, errdef.New(errdef.CodeBounds, "hit test without line height")
	}
	row := (y + lineHeight - 1) / lineHeight
	if !l.HasRow(row) {
		return 0, errdef.New(errdef.CodeBounds, "no row at y=%d", y)
	}
	return indexInRow(l, row, x), nil
}

// indexInRow resolves x within a row: the first cell whose right edge passes
// x wins, rounded at its midpoint; past the row end the last index wins.
func indexInRow(l layout.Layout, row, x int) int {
	sec := l.Section(row)
	for i := sec.First; i <= sec.Last; i++ {
		c := l.Cell(i)
		if c.XEnd <= x {
			continue
		}
		if x > (c.XStart+c.XEnd)/2 && i < sec.Last {
			return i + 1
		}
		return i
	}
	return sec.Last
}

// Move advances the caret in the given direction. pageRows is the row step
// used by PageUp/PageDown; extend grows the selection instead of collapsing
// it. Vertical moves keep the caret's column via the sticky x coordinate.
func (m *Model) Move(l layout.Layout, dir Dir, extend bool, pageRows int) {
	old := m.Pos

	switch dir {
	case Left:
		m.Pos = clamp(m.Pos-1, 1, l.Count()+1)
		m.hasSticky = false
	case Right:
		m.Pos = clamp(m.Pos+1, 1, l.Count()+1)
		m.hasSticky = false
	case Home:
		m.Pos = l.Section(l.RowOf(m.Pos)).First
		m.hasSticky = false
	case End:
		m.Pos = l.Section(l.RowOf(m.Pos)).Last
		m.hasSticky = false
	case Up:
		m.moveVertical(l, -1)
	case Down:
		m.moveVertical(l, 1)
	case PageUp:
		m.moveVertical(l, -maxInt(pageRows, 1))
	case PageDown:
		m.moveVertical(l, maxInt(pageRows, 1))
	}

	if extend {
		if m.Sel.Empty() {
			m.Sel.Anchor = old
		}
		m.Sel.Moving = m.Pos
	} else {
		m.Sel = Selection{Anchor: m.Pos, Moving: m.Pos}
	}
}

func (m *Model) moveVertical(l layout.Layout, rows int) {
	if !m.hasSticky {
		m.stickyX = l.Cell(m.Pos).XStart
		m.hasSticky = true
	}
	target := clamp(l.RowOf(m.Pos)+rows, 1, l.Rows())
	m.Pos = indexInRow(l, target, m.stickyX)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
