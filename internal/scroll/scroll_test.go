package scroll

import "testing"

func TestScrollExtents(t *testing.T) {
	v := Viewport{ContentW: 300, ContentH: 100, ViewW: 100, ViewH: 100}

	if got := v.ScrollWidth(); got != 199 {
		t.Fatalf("expected scroll width 199 (epsilon guard), got %d", got)
	}
	// Content exactly fits: the epsilon keeps the range at zero.
	if got := v.ScrollHeight(); got != 0 {
		t.Fatalf("expected zero scroll height, got %d", got)
	}
}

func TestClampForcesZeroOnFittingAxis(t *testing.T) {
	v := Viewport{ContentW: 50, ContentH: 400, ViewW: 100, ViewH: 100, AnchorX: 30, AnchorY: 1000}
	v.Clamp()

	if v.AnchorX != 0 {
		t.Fatalf("fitting axis must snap to 0, got %d", v.AnchorX)
	}
	if want := v.ScrollHeight(); v.AnchorY != want {
		t.Fatalf("expected anchor clamped to %d, got %d", want, v.AnchorY)
	}
}

func TestAlignOffsetOnlyWhenContentFits(t *testing.T) {
	v := Viewport{ContentH: 60, ViewH: 100, VAlign: 1}
	if got := v.AlignOffsetY(); got != -40 {
		t.Fatalf("expected bottom-align offset -40, got %d", got)
	}

	v.ContentH = 400
	if got := v.AlignOffsetY(); got != 0 {
		t.Fatalf("alignment must yield to scrolling, got %d", got)
	}
}

func TestRevealShiftsMinimally(t *testing.T) {
	v := Viewport{ContentW: 1000, ContentH: 1000, ViewW: 100, ViewH: 100}

	// Caret below the view: bottom edge lands on the caret bottom.
	v.Reveal(0, 180, 196, 4)
	if v.AnchorY != 96 {
		t.Fatalf("expected anchor y 96, got %d", v.AnchorY)
	}

	// Caret above: top edge lands on the caret top.
	v.Reveal(0, 50, 66, 4)
	if v.AnchorY != 50 {
		t.Fatalf("expected anchor y 50, got %d", v.AnchorY)
	}

	// Caret right of the view reserves the cursor-width margin.
	v.Reveal(250, 50, 66, 4)
	if v.AnchorX != 154 {
		t.Fatalf("expected anchor x 154, got %d", v.AnchorX)
	}

	// Already visible: nothing moves.
	x, y := v.AnchorX, v.AnchorY
	v.Reveal(200, 60, 76, 4)
	if v.AnchorX != x || v.AnchorY != y {
		t.Fatalf("visible caret must not move the anchor")
	}
}

func TestSliderGeometry(t *testing.T) {
	length, offset := Slider(100, 400, 0, 299)
	if length != 25 || offset != 0 {
		t.Fatalf("expected thumb (25,0), got (%d,%d)", length, offset)
	}

	length, offset = Slider(100, 400, 299, 299)
	if length != 25 || offset != 75 {
		t.Fatalf("expected thumb (25,75) at the far end, got (%d,%d)", length, offset)
	}

	if length, _ = Slider(100, 101, 1, 1); length != 0 {
		t.Fatalf("thumb must hide when the range is <= 1, got %d", length)
	}
}

func TestAnimateReachesTargetInFrames(t *testing.T) {
	v := Viewport{ContentW: 1000, ContentH: 1000, ViewW: 100, ViewH: 100}
	v.AnimateTo(120, 60, 4)

	ticks := 0
	for v.Tick() {
		ticks++
	}
	ticks++ // the final Tick returned false after landing

	if ticks != 4 {
		t.Fatalf("expected 4 frames, got %d", ticks)
	}
	if v.AnchorX != 120 || v.AnchorY != 60 {
		t.Fatalf("expected anchor (120,60), got (%d,%d)", v.AnchorX, v.AnchorY)
	}
	if v.Animating() {
		t.Fatalf("animation should be finished")
	}
}

func TestAnimateSingleFrameJumps(t *testing.T) {
	v := Viewport{ContentW: 1000, ContentH: 1000, ViewW: 100, ViewH: 100}
	v.AnimateTo(50, 50, 1)

	if v.AnchorX != 50 || v.AnchorY != 50 || v.Animating() {
		t.Fatalf("single-frame animation should jump, got (%d,%d)", v.AnchorX, v.AnchorY)
	}
}
