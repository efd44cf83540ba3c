package editor

import (
	"github.com/unkn0wn-root/typeset/internal/errdef"
)

// Align enumerates the horizontal alignment modes of a text entity.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Color is a plain RGBA value. The engine never renders; colors travel
// through to whichever renderer hosts the entity.
type Color struct {
	R, G, B, A uint8
}

const (
	defaultUndoLevels  = 20
	defaultBlinkShow   = 18
	defaultBlinkHide   = 12
	defaultRepeatDelay = 15
	defaultRepeatSpan  = 2
	defaultCaretWidth  = 2
)

// Config is the full configuration of a text entity. Width and Height are
// mandatory as soon as the entity should edit or scroll.
type Config struct {
	Width  int
	Height int

	Align      Align
	WholeWords bool
	OneLine    bool

	// MaxChars caps the total buffer length in characters. 0 is unlimited.
	// An insertion that would exceed the cap is silently discarded.
	MaxChars int

	// UndoLevels is the number of undoable edits kept. 0 disables history.
	UndoLevels int

	LetterSpacing int
	VAlign        float64

	// Editing and scrolling are opt-in capabilities; both require Width
	// and Height to be set.
	Editable   bool
	Scrollable bool

	Color  Color
	Colors []Color // optional per-line override

	CaretColor     Color
	CaretAlpha     uint8
	SelectionColor Color
	SelectionAlpha uint8
	SliderColor    Color
	SliderAlpha    uint8

	CaretWidth int

	// Caret blink phase lengths and key-repeat thresholds, in ticks.
	BlinkShow   int
	BlinkHide   int
	RepeatDelay int
	RepeatSpan  int
}

// DefaultConfig returns the baseline every entity starts from.
func DefaultConfig() Config {
	return Config{
		UndoLevels:     defaultUndoLevels,
		BlinkShow:      defaultBlinkShow,
		BlinkHide:      defaultBlinkHide,
		RepeatDelay:    defaultRepeatDelay,
		RepeatSpan:     defaultRepeatSpan,
		CaretWidth:     defaultCaretWidth,
		Color:          Color{R: 255, G: 255, B: 255, A: 255},
		CaretColor:     Color{R: 255, G: 255, B: 255, A: 255},
		CaretAlpha:     255,
		SelectionColor: Color{R: 90, G: 90, B: 160, A: 255},
		SelectionAlpha: 128,
		SliderColor:    Color{R: 200, G: 200, B: 200, A: 255},
		SliderAlpha:    180,
	}
}

func (c Config) validate() error {
	if (c.Editable || c.Scrollable) && (c.Width <= 0 || c.Height <= 0) {
		return errdef.New(errdef.CodeConfig,
			"edit/scroll capability requires width and height, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// Options is a partial Config: nil fields keep their current value. It
// mirrors the construction-or-update contract where any subset of
// properties may be supplied at any time.
type Options struct {
	Width  *int
	Height *int

	Align      *Align
	WholeWords *bool
	OneLine    *bool
	MaxChars   *int
	UndoLevels *int

	LetterSpacing *int
	VAlign        *float64

	Editable   *bool
	Scrollable *bool

	Color  *Color
	Colors []Color

	CaretColor     *Color
	CaretAlpha     *uint8
	SelectionColor *Color
	SelectionAlpha *uint8
	SliderColor    *Color
	SliderAlpha    *uint8

	CaretWidth *int

	BlinkShow   *int
	BlinkHide   *int
	RepeatDelay *int
	RepeatSpan  *int
}

func (c Config) apply(o Options) Config {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	setColor := func(dst *Color, src *Color) {
		if src != nil {
			*dst = *src
		}
	}
	setAlpha := func(dst *uint8, src *uint8) {
		if src != nil {
			*dst = *src
		}
	}

	setInt(&c.Width, o.Width)
	setInt(&c.Height, o.Height)
	if o.Align != nil {
		c.Align = *o.Align
	}
	setBool(&c.WholeWords, o.WholeWords)
	setBool(&c.OneLine, o.OneLine)
	setInt(&c.MaxChars, o.MaxChars)
	setInt(&c.UndoLevels, o.UndoLevels)
	setInt(&c.LetterSpacing, o.LetterSpacing)
	if o.VAlign != nil {
		c.VAlign = *o.VAlign
	}
	setBool(&c.Editable, o.Editable)
	setBool(&c.Scrollable, o.Scrollable)
	setColor(&c.Color, o.Color)
	if o.Colors != nil {
		c.Colors = append([]Color(nil), o.Colors...)
	}
	setColor(&c.CaretColor, o.CaretColor)
	setAlpha(&c.CaretAlpha, o.CaretAlpha)
	setColor(&c.SelectionColor, o.SelectionColor)
	setAlpha(&c.SelectionAlpha, o.SelectionAlpha)
	setColor(&c.SliderColor, o.SliderColor)
	setAlpha(&c.SliderAlpha, o.SliderAlpha)
	setInt(&c.CaretWidth, o.CaretWidth)
	setInt(&c.BlinkShow, o.BlinkShow)
	setInt(&c.BlinkHide, o.BlinkHide)
	setInt(&c.RepeatDelay, o.RepeatDelay)
	setInt(&c.RepeatSpan, o.RepeatSpan)

	return c
}

// LineColor resolves the color of 1-based row r: the per-line override when
// present, the base color otherwise.
func (c Config) LineColor(r int) Color {
	if r >= 1 && r <= len(c.Colors) {
		return c.Colors[r-1]
	}
	return c.Color
}
