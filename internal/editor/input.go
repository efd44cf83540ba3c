package editor

import (
	"unicode"

	"github.com/unkn0wn-root/typeset/internal/caret"
)

// HandleKeyDown processes one key press and arms key repeat for it. The
// returned action tells the session whether editing finished.
func (e *Entity) HandleKeyDown(ev KeyPress) action {
	held := ev
	e.held = &held
	e.repeatTicks = 0
	e.blink = 0
	return e.applyKey(ev)
}

// HandleKeyUp clears pending repeat state for the released key.
func (e *Entity) HandleKeyUp(ev KeyRelease) {
	if e.held == nil {
		return
	}
	if e.held.Code == ev.Code && e.held.Special == ev.Special {
		e.held = nil
		e.repeatTicks = 0
	}
}

func (e *Entity) applyKey(ev KeyPress) action {
	switch ev.Special {
	case KeyLeft:
		e.move(caret.Left, ev.Shift)
	case KeyRight:
		e.move(caret.Right, ev.Shift)
	case KeyUp:
		e.move(caret.Up, ev.Shift)
	case KeyDown:
		e.move(caret.Down, ev.Shift)
	case KeyPageUp:
		e.move(caret.PageUp, ev.Shift)
	case KeyPageDown:
		e.move(caret.PageDown, ev.Shift)
	case KeyHome:
		e.move(caret.Home, ev.Shift)
	case KeyEnd:
		e.move(caret.End, ev.Shift)
	case KeyBackspace:
		if e.cfg.Editable {
			e.DeleteBackward()
		}
	case KeyDelete:
		if e.cfg.Editable {
			e.DeleteForward()
		}
	case KeyEnter:
		if e.cfg.OneLine {
			return actionFinish
		}
		if e.cfg.Editable {
			e.Insert("\n")
		}
	case KeyEscape:
		return actionFinishEscaped
	case KeyGo:
		return actionFinish
	case KeyTab:
		if e.cfg.Editable {
			e.Insert("\t")
		}
	case KeyNone:
		if e.cfg.Editable && ev.Code != 0 && unicode.IsPrint(ev.Code) {
			e.Insert(string(ev.Code))
		}
	}
	return actionNone
}

func (e *Entity) move(dir caret.Dir, extend bool) {
	e.car.Move(e.lay, dir, extend, e.pageRows())
	e.blink = 0
	e.revealCaret()
}

// repeatable reports whether a held key re-fires while held. Finishing keys
// never repeat.
func repeatable(ev KeyPress) bool {
	switch ev.Special {
	case KeyEnter, KeyEscape, KeyGo:
		return false
	}
	return true
}
