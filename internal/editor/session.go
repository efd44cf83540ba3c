package editor

// FinishedFunc is called when a focus session ends with changed text. The
// handle identifies the entity; escaped is true when Escape ended the
// session.
type FinishedFunc func(handle string, escaped bool)

// Session routes input to the single focused entity. Only one entity holds
// caret, selection and repeat focus at a time; switching runs a strict
// blur-then-focus sequence with no overlap.
type Session struct {
	focused    *Entity
	onFinished FinishedFunc
}

func NewSession(onFinished FinishedFunc) *Session {
	return &Session{onFinished: onFinished}
}

// Focused returns the entity currently holding focus, or nil.
func (s *Session) Focused() *Entity {
	return s.focused
}

// Focus moves input focus to e, blurring the previous entity first. The
// previous entity's session ends before the new one begins.
func (s *Session) Focus(e *Entity) {
	if s.focused == e {
		return
	}
	if s.focused != nil {
		s.blur(false)
	}
	if e == nil {
		return
	}
	e.focused = true
	e.sessionText = e.Text()
	e.blink = 0
	s.focused = e
}

// Blur ends the current focus session, firing the finished callback when
// the text changed during the session.
func (s *Session) Blur() {
	s.blur(false)
}

func (s *Session) blur(escaped bool) {
	e := s.focused
	if e == nil {
		return
	}
	s.focused = nil
	e.focused = false
	e.held = nil
	e.repeatTicks = 0
	e.dragging = false
	e.car.ClearSticky()

	if s.onFinished != nil && e.Text() != e.sessionText {
		s.onFinished(e.id, escaped)
	}
}

// KeyDown forwards a key press to the focused entity and ends the session
// when the key finished editing.
func (s *Session) KeyDown(ev KeyPress) {
	if s.focused == nil {
		return
	}
	switch s.focused.HandleKeyDown(ev) {
	case actionFinish:
		s.blur(false)
	case actionFinishEscaped:
		s.blur(true)
	}
}

// KeyUp forwards a key release to the focused entity.
func (s *Session) KeyUp(ev KeyRelease) {
	if s.focused != nil {
		s.focused.HandleKeyUp(ev)
	}
}

// PointerDown forwards a pointer press; PointerMove and PointerUp continue
// a drag selection.
func (s *Session) PointerDown(p Pointer) {
	if s.focused != nil {
		s.focused.PointerDown(p)
	}
}

func (s *Session) PointerMove(p Pointer) {
	if s.focused != nil {
		s.focused.PointerMove(p)
	}
}

func (s *Session) PointerUp(p Pointer) {
	if s.focused != nil {
		s.focused.PointerUp(p)
	}
}

// Tick advances the focused entity by one frame.
func (s *Session) Tick() {
	if s.focused != nil {
		s.focused.Tick()
	}
}
