package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/unkn0wn-root/typeset/internal/editor"
	"github.com/unkn0wn-root/typeset/internal/layout"
	"github.com/unkn0wn-root/typeset/internal/metrics"
)

const tickRate = time.Second / 30

type tickMsg time.Time

type keyMap struct {
	Quit      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Copy      key.Binding
	Cut       key.Binding
	Paste     key.Binding
	Duplicate key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Duplicate: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "duplicate")),
	}
}

type model struct {
	session  *editor.Session
	ent      *editor.Entity
	keys     keyMap
	finished string
	width    int
	height   int

	borderStyle lipgloss.Style
	statusStyle lipgloss.Style
	selStyle    lipgloss.Style
	caretStyle  lipgloss.Style
	sliderStyle lipgloss.Style
}

func newModel(ent *editor.Entity) *model {
	return &model{
		ent:  ent,
		keys: defaultKeyMap(),
	}
}

func (m *model) Init() tea.Cmd {
	m.session = editor.NewSession(func(handle string, escaped bool) {
		state := "finished"
		if escaped {
			state = "escaped"
		}
		m.finished = fmt.Sprintf("%s %s", handle[:8], state)
	})
	m.session.Focus(m.ent)

	m.borderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	m.statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("236"))
	m.selStyle = lipgloss.NewStyle().
		Background(colorTerm(m.ent.Config().SelectionColor))
	m.caretStyle = lipgloss.NewStyle().Reverse(true)
	m.sliderStyle = lipgloss.NewStyle().
		Foreground(colorTerm(m.ent.Config().SliderColor))

	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := msg.Width - 4  // border and slider column
		h := msg.Height - 3 // border and status line
		if w > 0 && h > 0 {
			if err := m.ent.Update(editor.Options{Width: &w, Height: &h}); err != nil {
				m.finished = err.Error()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		m.session.Tick()
		return m, tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Blur()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Undo):
		m.ent.Undo()
		return m, nil
	case key.Matches(msg, m.keys.Redo):
		m.ent.Redo()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.ent.Copy()
		return m, nil
	case key.Matches(msg, m.keys.Cut):
		m.ent.Cut()
		return m, nil
	case key.Matches(msg, m.keys.Paste):
		m.ent.Paste()
		return m, nil
	case key.Matches(msg, m.keys.Duplicate):
		m.ent.Duplicate()
		return m, nil
	}

	ev, ok := translateKey(msg)
	if !ok {
		return m, nil
	}
	m.session.KeyDown(ev)
	// Terminals report no release events and repeat keys themselves, so
	// every press is released immediately and the engine's own repeat
	// logic stays idle.
	m.session.KeyUp(editor.KeyRelease{Code: ev.Code, Special: ev.Special})

	if m.session.Focused() == nil && m.ent.Config().OneLine {
		return m, tea.Quit
	}
	return m, nil
}

// translateKey maps a terminal key message onto the engine's event shape.
func translateKey(msg tea.KeyMsg) (editor.KeyPress, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return editor.KeyPress{Special: editor.KeyLeft}, true
	case tea.KeyRight:
		return editor.KeyPress{Special: editor.KeyRight}, true
	case tea.KeyUp:
		return editor.KeyPress{Special: editor.KeyUp}, true
	case tea.KeyDown:
		return editor.KeyPress{Special: editor.KeyDown}, true
	case tea.KeyShiftLeft:
		return editor.KeyPress{Special: editor.KeyLeft, Shift: true}, true
	case tea.KeyShiftRight:
		return editor.KeyPress{Special: editor.KeyRight, Shift: true}, true
	case tea.KeyShiftUp:
		return editor.KeyPress{Special: editor.KeyUp, Shift: true}, true
	case tea.KeyShiftDown:
		return editor.KeyPress{Special: editor.KeyDown, Shift: true}, true
	case tea.KeyHome:
		return editor.KeyPress{Special: editor.KeyHome}, true
	case tea.KeyEnd:
		return editor.KeyPress{Special: editor.KeyEnd}, true
	case tea.KeyShiftHome:
		return editor.KeyPress{Special: editor.KeyHome, Shift: true}, true
	case tea.KeyShiftEnd:
		return editor.KeyPress{Special: editor.KeyEnd, Shift: true}, true
	case tea.KeyPgUp:
		return editor.KeyPress{Special: editor.KeyPageUp}, true
	case tea.KeyPgDown:
		return editor.KeyPress{Special: editor.KeyPageDown}, true
	case tea.KeyBackspace:
		return editor.KeyPress{Special: editor.KeyBackspace}, true
	case tea.KeyDelete:
		return editor.KeyPress{Special: editor.KeyDelete}, true
	case tea.KeyEnter:
		return editor.KeyPress{Special: editor.KeyEnter}, true
	case tea.KeyEscape:
		return editor.KeyPress{Special: editor.KeyEscape}, true
	case tea.KeyTab:
		return editor.KeyPress{Special: editor.KeyTab}, true
	case tea.KeySpace:
		return editor.KeyPress{Code: ' '}, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return editor.KeyPress{Code: msg.Runes[0]}, true
		}
	}
	return editor.KeyPress{}, false
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return
	}
	// Entity-local coordinates: one terminal cell per engine pixel. The
	// border eats one column; rows resolve by ceiling division, so the
	// first text row (terminal row 1) maps to engine y 1.
	p := editor.Pointer{X: msg.X - 1, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		m.session.PointerDown(p)
	case tea.MouseActionMotion:
		m.session.PointerMove(p)
	case tea.MouseActionRelease:
		m.session.PointerUp(p)
	}
}

func (m *model) View() string {
	if m.width == 0 {
		return "starting..."
	}

	cfg := m.ent.Config()
	lay := m.ent.Layout()
	view := m.ent.View()
	lineH := m.ent.LineHeight()

	caretPos := m.ent.Caret()
	selLo, selHi := m.ent.Selection().Normalized()
	caretOn := m.ent.CaretVisible()

	firstRow := view.AnchorY/lineH + 1
	visible := cfg.Height / lineH
	if visible < 1 {
		visible = 1
	}

	sliderLen, sliderOff := m.ent.VSlider()

	var body strings.Builder
	for i := 0; i < visible; i++ {
		r := firstRow + i
		line := " "
		if lay.HasRow(r) {
			line = m.renderRow(lay, r, cfg, caretPos, selLo, selHi, caretOn, m.ent.Focused(), view.AnchorX)
		}
		line = padToWidth(line, cfg.Width)
		body.WriteString(line)
		body.WriteString(m.sliderGlyph(i, sliderLen, sliderOff))
		if i < visible-1 {
			body.WriteByte('\n')
		}
	}

	status := fmt.Sprintf(" caret %d  rows %d  chars %d ", caretPos, lay.Rows(), lay.Count())
	if m.finished != "" {
		status += "| " + m.finished + " "
	}
	status += "| ctrl+q quit, ctrl+z undo, ctrl+d duplicate"
	status = ansi.Truncate(status, m.width, "…")

	return m.borderStyle.Render(body.String()) + "\n" + m.statusStyle.Render(status)
}

// renderRow styles one wrapped row cell by cell: selection background over
// the selected span, a reversed cell at the caret when its blink phase is
// on, per line colors from the entity config.
func (m *model) renderRow(lay layout.Layout, r int, cfg editor.Config, caretPos, selLo, selHi int, caretOn, focused bool, anchorX int) string {
	sec := lay.Section(r)
	base := lipgloss.NewStyle().Foreground(colorTerm(cfg.LineColor(r)))

	var b strings.Builder
	caretDrawn := false
	for i := sec.First; i <= sec.Last; i++ {
		c := lay.Cell(i)
		if c.XEnd <= anchorX {
			continue
		}
		g := c.Glyph
		atCaret := focused && caretOn && i == caretPos
		if g == 0 || g == '\n' {
			if atCaret {
				b.WriteString(m.caretStyle.Render(" "))
				caretDrawn = true
			}
			continue
		}
		glyph := string(g)
		if ansi.StringWidth(glyph) == 0 {
			// The measurer promotes zero-width runes to one cell so the
			// caret can address them; keep that cell on screen.
			glyph = " "
		}
		// Letter spacing widens the engine span past the rune's own cells.
		if pad := (c.XEnd - c.XStart) - metrics.RuneCells(g); pad > 0 {
			glyph += strings.Repeat(" ", pad)
		}
		switch {
		case atCaret:
			b.WriteString(m.caretStyle.Render(glyph))
			caretDrawn = true
		case i >= selLo && i < selHi:
			b.WriteString(m.selStyle.Render(glyph))
		default:
			b.WriteString(base.Render(glyph))
		}
	}
	// Caret past the last visible glyph of its row.
	if focused && caretOn && !caretDrawn && lay.RowOf(caretPos) == r {
		b.WriteString(m.caretStyle.Render(" "))
	}
	return b.String()
}

// sliderGlyph draws the scroll track column for body line i.
func (m *model) sliderGlyph(i, length, offset int) string {
	if length <= 0 {
		return " "
	}
	if i >= offset && i < offset+length {
		return m.sliderStyle.Render("█")
	}
	return m.sliderStyle.Render("│")
}

// padToWidth pads or trims a styled line to the given display width.
func padToWidth(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func colorTerm(c editor.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
