package editor

// Tick advances the entity by one host frame: caret blink phase, key
// repeat and any in-flight viewport animation. The core owns no timers;
// whoever runs the frame loop calls this.
func (e *Entity) Tick() {
	if period := e.cfg.BlinkShow + e.cfg.BlinkHide; period > 0 {
		e.blink = (e.blink + 1) % period
	}

	if e.held != nil && e.cfg.RepeatDelay > 0 && repeatable(*e.held) {
		e.repeatTicks++
		if e.repeatTicks >= e.cfg.RepeatDelay && e.cfg.RepeatSpan > 0 &&
			(e.repeatTicks-e.cfg.RepeatDelay)%e.cfg.RepeatSpan == 0 {
			e.applyKey(*e.held)
		}
	}

	e.view.Tick()
}

// CaretVisible reports the caret blink phase: true during the show window
// of a focused entity.
func (e *Entity) CaretVisible() bool {
	if !e.focused {
		return false
	}
	if e.cfg.BlinkShow+e.cfg.BlinkHide <= 0 {
		return true
	}
	return e.blink < e.cfg.BlinkShow
}
