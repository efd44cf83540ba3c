package editor

import "testing"

type finishRecorder struct {
	calls   int
	handle  string
	escaped bool
}

func (f *finishRecorder) fn(handle string, escaped bool) {
	f.calls++
	f.handle = handle
	f.escaped = escaped
}

func TestBlurFiresFinishedOnceWhenChanged(t *testing.T) {
	rec := &finishRecorder{}
	s := NewSession(rec.fn)
	e := newEntity(t, nil)

	s.Focus(e)
	s.KeyDown(KeyPress{Code: 'x'})
	s.Blur()

	if rec.calls != 1 {
		t.Fatalf("expected exactly one callback, got %d", rec.calls)
	}
	if rec.handle != e.Handle() || rec.escaped {
		t.Fatalf("unexpected callback args (%q,%v)", rec.handle, rec.escaped)
	}

	// A second blur has no session to end.
	s.Blur()
	if rec.calls != 1 {
		t.Fatalf("blur without focus must not fire, got %d calls", rec.calls)
	}
}

func TestBlurSilentWhenUnchanged(t *testing.T) {
	rec := &finishRecorder{}
	s := NewSession(rec.fn)
	e := newEntity(t, nil)
	e.SetText("stable")

	s.Focus(e)
	s.KeyDown(KeyPress{Special: KeyRight})
	s.Blur()

	if rec.calls != 0 {
		t.Fatalf("unchanged session must not fire, got %d calls", rec.calls)
	}
}

func TestEscapeFinishesEscaped(t *testing.T) {
	rec := &finishRecorder{}
	s := NewSession(rec.fn)
	e := newEntity(t, nil)

	s.Focus(e)
	s.KeyDown(KeyPress{Code: 'x'})
	s.KeyDown(KeyPress{Special: KeyEscape})

	if rec.calls != 1 || !rec.escaped {
		t.Fatalf("expected one escaped callback, got calls=%d escaped=%v", rec.calls, rec.escaped)
	}
	if s.Focused() != nil {
		t.Fatalf("escape must end the focus session")
	}
}

func TestEnterFinishesOnlyOneLine(t *testing.T) {
	rec := &finishRecorder{}
	s := NewSession(rec.fn)

	multi := newEntity(t, nil)
	s.Focus(multi)
	s.KeyDown(KeyPress{Code: 'a'})
	s.KeyDown(KeyPress{Special: KeyEnter})
	if s.Focused() != multi {
		t.Fatalf("enter in multiline mode must not finish")
	}
	if got := multi.Text(); got != "a\n" {
		t.Fatalf("expected inserted newline, got %q", got)
	}
	s.Blur()

	oneline := newEntity(t, func(c *Config) { c.OneLine = true })
	s.Focus(oneline)
	s.KeyDown(KeyPress{Code: 'a'})
	s.KeyDown(KeyPress{Special: KeyEnter})
	if s.Focused() != nil {
		t.Fatalf("enter in one-line mode must finish")
	}
}

func TestFocusSwitchBlursPreviousFirst(t *testing.T) {
	var order []string
	s := NewSession(func(handle string, escaped bool) {
		order = append(order, handle)
	})

	a := newEntity(t, nil)
	b := newEntity(t, nil)

	s.Focus(a)
	s.KeyDown(KeyPress{Code: 'x'})
	s.Focus(b)

	if a.Focused() || !b.Focused() {
		t.Fatalf("focus must move from a to b")
	}
	if len(order) != 1 || order[0] != a.Handle() {
		t.Fatalf("switching focus must finish the previous session, got %v", order)
	}
}

func TestKeyRepeatRefiresAfterDelay(t *testing.T) {
	e := newEntity(t, func(c *Config) {
		c.RepeatDelay = 3
		c.RepeatSpan = 2
	})

	e.HandleKeyDown(KeyPress{Code: 'x'})
	if got := e.Text(); got != "x" {
		t.Fatalf("expected %q, got %q", "x", got)
	}

	e.Tick()
	e.Tick()
	if got := e.Text(); got != "x" {
		t.Fatalf("repeat must wait for the delay, got %q", got)
	}
	e.Tick() // delay reached: refire
	if got := e.Text(); got != "xx" {
		t.Fatalf("expected refire at the delay threshold, got %q", got)
	}
	e.Tick()
	e.Tick() // span elapsed: refire again
	if got := e.Text(); got != "xxx" {
		t.Fatalf("expected span refire, got %q", got)
	}

	e.HandleKeyUp(KeyRelease{Code: 'x'})
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if got := e.Text(); got != "xxx" {
		t.Fatalf("release must stop the repeat, got %q", got)
	}
}

func TestFinishingKeysDoNotRepeat(t *testing.T) {
	e := newEntity(t, func(c *Config) {
		c.OneLine = true
		c.RepeatDelay = 1
		c.RepeatSpan = 1
	})

	if got := e.HandleKeyDown(KeyPress{Special: KeyEnter}); got != actionFinish {
		t.Fatalf("expected finish action")
	}
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	// Nothing observable should have happened; in particular no panic from
	// refiring a finish key outside a session.
}

func TestCaretBlinkPhases(t *testing.T) {
	rec := &finishRecorder{}
	s := NewSession(rec.fn)
	e := newEntity(t, func(c *Config) {
		c.BlinkShow = 2
		c.BlinkHide = 2
	})
	s.Focus(e)

	if !e.CaretVisible() {
		t.Fatalf("caret should start visible")
	}
	e.Tick()
	if !e.CaretVisible() {
		t.Fatalf("caret should stay visible through the show phase")
	}
	e.Tick()
	if e.CaretVisible() {
		t.Fatalf("caret should hide after the show phase")
	}
	e.Tick()
	e.Tick()
	if !e.CaretVisible() {
		t.Fatalf("blink phase should wrap around")
	}

	s.Blur()
	if e.CaretVisible() {
		t.Fatalf("blurred entity must not show a caret")
	}
}
