// Package scroll computes the visible window into a laid-out text: scroll
// extents, anchor clamping, caret reveal and scrollbar geometry. It owns no
// timers; animation advances only when the host calls Tick.
package scroll

// epsilon guards the scroll extents against one-pixel boundary flicker when
// content and viewport are the same size.
const epsilon = 1

// Viewport is the scroll state of one editable text. Content and view sizes
// are in pixels; the anchor is the offset of the visible window into the
// content.
type Viewport struct {
	ContentW int
	ContentH int
	ViewW    int
	ViewH    int

	AnchorX int
	AnchorY int

	// VAlign shifts content vertically when it fits entirely: 0 top,
	// 1 bottom. Purely cosmetic, never part of the scroll state.
	VAlign float64

	anim *anim
}

type anim struct {
	fromX, fromY     int
	targetX, targetY int
	frame, frames    int
}

// ScrollWidth is the horizontal scroll range.
func (v *Viewport) ScrollWidth() int {
	return maxInt(v.ContentW-v.ViewW-epsilon, 0)
}

// ScrollHeight is the vertical scroll range.
func (v *Viewport) ScrollHeight() int {
	return maxInt(v.ContentH-v.ViewH-epsilon, 0)
}

// Clamp forces the anchor into the valid scroll range. An axis with no range
// snaps to 0 so a resized viewport cannot leave the content drifted.
func (v *Viewport) Clamp() {
	v.AnchorX = clamp(v.AnchorX, 0, v.ScrollWidth())
	v.AnchorY = clamp(v.AnchorY, 0, v.ScrollHeight())
}

// AlignOffsetY is the static vertical-alignment shift. It applies only when
// the content fits; as soon as the text scrolls, alignment yields to the
// anchor.
func (v *Viewport) AlignOffsetY() int {
	if v.ScrollHeight() != 0 {
		return 0
	}
	return int(v.VAlign * float64(v.ContentH-v.ViewH))
}

// Reveal shifts the anchor by the minimal amount that brings the caret span
// back inside the view. The caret is nudged to the nearest edge, never
// re-centered; curWidth reserves a right margin so the caret is not glued to
// the viewport border.
func (v *Viewport) Reveal(x, yTop, yBottom, curWidth int) {
	if x < v.AnchorX {
		v.AnchorX = x
	} else if x+curWidth > v.AnchorX+v.ViewW {
		v.AnchorX = x + curWidth - v.ViewW
	}

	if yTop < v.AnchorY {
		v.AnchorY = yTop
	} else if yBottom > v.AnchorY+v.ViewH {
		v.AnchorY = yBottom - v.ViewH
	}

	v.Clamp()
}

// Slider returns the scrollbar thumb geometry for one axis. The thumb
// disappears when there is nothing meaningful to scroll.
func Slider(viewSize, contentSize, anchor, scrollRange int) (length, offset int) {
	if scrollRange <= 1 || contentSize <= 0 {
		return 0, 0
	}
	length = viewSize * viewSize / contentSize
	offset = (viewSize - length) * anchor / scrollRange
	return length, offset
}

// AnimateTo starts a linear anchor animation over the given frame count.
// frames <= 1 jumps immediately.
func (v *Viewport) AnimateTo(x, y, frames int) {
	v.anim = nil
	if frames <= 1 {
		v.AnchorX, v.AnchorY = x, y
		v.Clamp()
		return
	}
	v.anim = &anim{
		fromX: v.AnchorX, fromY: v.AnchorY,
		targetX: x, targetY: y,
		frames: frames,
	}
}

// Animating reports whether an anchor animation is in flight.
func (v *Viewport) Animating() bool {
	return v.anim != nil
}

// Tick advances the in-flight animation by one frame and reports whether it
// is still running afterwards.
func (v *Viewport) Tick() bool {
	a := v.anim
	if a == nil {
		return false
	}
	a.frame++
	v.AnchorX = a.fromX + (a.targetX-a.fromX)*a.frame/a.frames
	v.AnchorY = a.fromY + (a.targetY-a.fromY)*a.frame/a.frames
	if a.frame >= a.frames {
		v.anim = nil
	}
	v.Clamp()
	return v.anim != nil
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
