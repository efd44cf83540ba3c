// Package editor ties the layout, caret, history and scroll pieces together
// into one editable-text entity. The entity is single-threaded: every
// mutation happens inside an input handler or a tick, both driven by the
// host loop.
package editor

import (
	"github.com/google/uuid"

	"github.com/unkn0wn-root/typeset/internal/caret"
	"github.com/unkn0wn-root/typeset/internal/history"
	"github.com/unkn0wn-root/typeset/internal/layout"
	"github.com/unkn0wn-root/typeset/internal/metrics"
	"github.com/unkn0wn-root/typeset/internal/scroll"
)

// Entity is one editable text: it owns the buffer, the wrapped layout, the
// caret and selection, the undo history and the viewport. Caret and
// selection state are plain fields of the entity, never shared between
// entities.
type Entity struct {
	id  string
	cfg Config
	m   metrics.Measurer

	text []rune
	lay  layout.Layout
	car  caret.Model
	hist *history.Manager
	view scroll.Viewport
	clip *Clipboard

	blink       int
	held        *KeyPress
	repeatTicks int

	focused     bool
	sessionText string
	dragging    bool
}

// New builds an entity from a config. Editing or scrolling capability
// without both dimensions is a configuration error.
func New(m metrics.Measurer, cfg Config) (*Entity, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Entity{
		id:   uuid.NewString(),
		cfg:  cfg,
		m:    m,
		car:  caret.New(),
		clip: newClipboard(),
	}
	e.view.ViewW = cfg.Width
	e.view.ViewH = cfg.Height
	e.view.VAlign = cfg.VAlign
	e.hist = history.New(cfg.UndoLevels, history.Snapshot{Text: "", Caret: 1})
	e.relayout()
	return e, nil
}

// Handle is the entity's opaque identifier, stable for its lifetime.
func (e *Entity) Handle() string {
	return e.id
}

// Text returns the current buffer contents.
func (e *Entity) Text() string {
	return string(e.text)
}

// SetText replaces the buffer wholesale and restarts history from the new
// text. The caret collapses to the start.
func (e *Entity) SetText(s string) {
	if e.cfg.OneLine {
		s = flattenNewlines(s)
	}
	e.text = []rune(s)
	e.hist = history.New(e.cfg.UndoLevels, history.Snapshot{Text: s, Caret: 1})
	e.relayout()
	e.car.SetPos(e.lay, 1)
	e.view.AnchorX, e.view.AnchorY = 0, 0
	e.view.Clamp()
}

// Layout exposes the current wrapped layout.
func (e *Entity) Layout() layout.Layout {
	return e.lay
}

// Caret returns the caret position, a 1-based character index.
func (e *Entity) Caret() int {
	return e.car.Pos
}

// Selection returns the stored, un-normalized selection pair.
func (e *Entity) Selection() caret.Selection {
	return e.car.Sel
}

// View exposes the viewport for rendering and host-driven scrolling.
func (e *Entity) View() *scroll.Viewport {
	return &e.view
}

// Config returns a copy of the active configuration.
func (e *Entity) Config() Config {
	return e.cfg
}

// Focused reports whether the entity currently holds input focus.
func (e *Entity) Focused() bool {
	return e.focused
}

// Update applies a partial configuration; unspecified fields keep their
// values. Changing the undo capacity restarts history from the current
// text.
func (e *Entity) Update(o Options) error {
	next := e.cfg.apply(o)
	if err := next.validate(); err != nil {
		return err
	}
	undoChanged := next.UndoLevels != e.cfg.UndoLevels
	e.cfg = next

	e.view.ViewW = e.cfg.Width
	e.view.ViewH = e.cfg.Height
	e.view.VAlign = e.cfg.VAlign

	if undoChanged {
		e.hist = history.New(e.cfg.UndoLevels, history.Snapshot{Text: e.Text(), Caret: e.car.Pos})
	}
	if e.cfg.OneLine {
		e.text = []rune(flattenNewlines(string(e.text)))
	}
	e.relayout()
	e.car.SetPos(e.lay, e.car.Pos)
	e.view.Clamp()
	return nil
}

// LineHeight is the vertical advance used for rows, carets and hit tests.
func (e *Entity) LineHeight() int {
	if lh := e.m.LineHeight(); lh > 0 {
		return lh
	}
	return 1
}

// CaretRect returns the caret's pixel box in layout coordinates.
func (e *Entity) CaretRect() (x, yTop, yBottom int) {
	c := e.lay.Cell(e.car.Pos)
	lh := e.LineHeight()
	return c.XStart, (c.Row - 1) * lh, c.Row * lh
}

// VSlider returns the vertical scrollbar thumb geometry.
func (e *Entity) VSlider() (length, offset int) {
	return scroll.Slider(e.view.ViewH, e.view.ContentH, e.view.AnchorY, e.view.ScrollHeight())
}

// HSlider returns the horizontal scrollbar thumb geometry.
func (e *Entity) HSlider() (length, offset int) {
	return scroll.Slider(e.view.ViewW, e.view.ContentW, e.view.AnchorX, e.view.ScrollWidth())
}

// relayout regenerates the wrapped layout from scratch. Every edit funnels
// through here; the layout is never patched incrementally.
func (e *Entity) relayout() {
	opts := layout.Options{
		LetterSpacing: e.cfg.LetterSpacing,
		WholeWords:    e.cfg.WholeWords,
	}
	if !e.cfg.OneLine && e.cfg.Width > 0 {
		opts.MaxWidth = e.cfg.Width
	}
	l := layout.Wrap(e.m, string(e.text), opts)
	if e.cfg.Align == AlignJustify && opts.MaxWidth > 0 {
		l = layout.Justify(e.m, l, opts.MaxWidth)
	}
	e.lay = l

	e.view.ContentW = l.Width()
	e.view.ContentH = l.Height(e.LineHeight())
	e.view.Clamp()
}

// revealCaret auto-scrolls so the caret stays visible. A no-op for
// entities without a viewport.
func (e *Entity) revealCaret() {
	if e.cfg.Width <= 0 || e.cfg.Height <= 0 {
		return
	}
	x, yTop, yBottom := e.CaretRect()
	e.view.Reveal(x, yTop, yBottom, e.cfg.CaretWidth)
}

// pageRows is the row step of PageUp/PageDown for the current viewport.
func (e *Entity) pageRows() int {
	rows := e.cfg.Height / e.LineHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}

// HitTest maps entity-local pixels to a character index, accounting for
// scroll and vertical alignment. Out-of-bounds coordinates report a bounds
// error and leave the caret untouched.
func (e *Entity) HitTest(x, y int) (int, error) {
	lx := x + e.view.AnchorX
	ly := y + e.view.AnchorY - e.view.AlignOffsetY()
	return caret.HitTest(e.lay, lx, ly, e.LineHeight())
}

// PointerDown places the caret at the hit position and starts a drag
// selection. A miss keeps the previous caret position.
func (e *Entity) PointerDown(p Pointer) {
	e.dragging = true
	e.blink = 0
	idx, err := e.HitTest(p.X, p.Y)
	if err != nil {
		e.car.SetPos(e.lay, e.car.Pos)
		return
	}
	e.car.SetPos(e.lay, idx)
	e.revealCaret()
}

// PointerMove extends the drag selection toward the hit position.
func (e *Entity) PointerMove(p Pointer) {
	if !e.dragging {
		return
	}
	idx, err := e.HitTest(p.X, p.Y)
	if err != nil {
		return
	}
	e.car.SetSelection(e.lay, e.car.Sel.Anchor, idx)
	e.revealCaret()
}

// PointerUp ends the drag selection.
func (e *Entity) PointerUp(p Pointer) {
	e.dragging = false
}

func flattenNewlines(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r == '\n' {
			out[i] = ' '
		}
	}
	return string(out)
}
