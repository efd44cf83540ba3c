package editor

// Insert places s at the caret, replacing the selection when one is active.
// In one-line mode newlines flatten to spaces. An insertion that would push
// the buffer past MaxChars is silently discarded: no error, no partial
// insert, prior state untouched.
func (e *Entity) Insert(s string) {
	if e.cfg.OneLine {
		s = flattenNewlines(s)
	}
	lo, hi := e.car.Sel.Normalized()
	e.splice(lo, hi, []rune(s))
}

// DeleteBackward removes the selection, or the character before the caret.
func (e *Entity) DeleteBackward() {
	lo, hi := e.car.Sel.Normalized()
	if lo == hi {
		if e.car.Pos <= 1 {
			return
		}
		lo, hi = e.car.Pos-1, e.car.Pos
	}
	e.splice(lo, hi, nil)
}

// DeleteForward removes the selection, or the character after the caret.
func (e *Entity) DeleteForward() {
	lo, hi := e.car.Sel.Normalized()
	if lo == hi {
		if e.car.Pos > e.lay.Count() {
			return
		}
		lo, hi = e.car.Pos, e.car.Pos+1
	}
	e.splice(lo, hi, nil)
}

// DeleteSelection removes the selected range, if any.
func (e *Entity) DeleteSelection() {
	lo, hi := e.car.Sel.Normalized()
	if lo == hi {
		return
	}
	e.splice(lo, hi, nil)
}

// Duplicate copies the selection in place after itself, or duplicates the
// caret's row when the selection is empty.
func (e *Entity) Duplicate() {
	lo, hi := e.car.Sel.Normalized()
	if lo != hi {
		copyText := append([]rune(nil), e.text[lo-1:hi-1]...)
		e.splice(hi, hi, copyText)
		return
	}

	sec := e.lay.Section(e.lay.RowOf(e.car.Pos))
	last := sec.Last
	if last > len(e.text) {
		last = len(e.text)
	}
	if last < sec.First {
		return
	}
	row := append([]rune(nil), e.text[sec.First-1:last]...)
	if len(row) == 0 {
		return
	}
	if row[len(row)-1] != '\n' {
		row = append([]rune{'\n'}, row...)
	}
	e.splice(last+1, last+1, row)
}

// Copy writes the selected text to the clipboard. Empty selections are
// ignored.
func (e *Entity) Copy() {
	lo, hi := e.car.Sel.Normalized()
	if lo == hi {
		return
	}
	e.clip.Write(string(e.text[lo-1 : hi-1]))
}

// Cut copies the selection and removes it.
func (e *Entity) Cut() {
	lo, hi := e.car.Sel.Normalized()
	if lo == hi {
		return
	}
	e.clip.Write(string(e.text[lo-1 : hi-1]))
	e.splice(lo, hi, nil)
}

// Paste inserts the clipboard contents at the caret.
func (e *Entity) Paste() {
	if s := e.clip.Read(); s != "" {
		e.Insert(s)
	}
}

// Undo steps the history one level back and restores its snapshot.
func (e *Entity) Undo() {
	e.navigateHistory(-1)
}

// Redo steps the history one level forward.
func (e *Entity) Redo() {
	e.navigateHistory(1)
}

func (e *Entity) navigateHistory(delta int) {
	snap, ok := e.hist.Navigate(delta, e.car.Pos)
	if !ok {
		return
	}
	e.text = []rune(snap.Text)
	e.relayout()
	e.car.SetPos(e.lay, snap.Caret)
	e.revealCaret()
}

// splice replaces characters [lo, hi) with repl, recording history before
// the mutation and rebuilding the layout after. lo and hi are 1-based caret
// positions; equal values insert without removal.
func (e *Entity) splice(lo, hi int, repl []rune) {
	if len(repl) == 0 && lo == hi {
		return
	}
	newLen := len(e.text) - (hi - lo) + len(repl)
	if e.cfg.MaxChars > 0 && newLen > e.cfg.MaxChars {
		return
	}

	next := make([]rune, 0, newLen)
	next = append(next, e.text[:lo-1]...)
	next = append(next, repl...)
	next = append(next, e.text[hi-1:]...)

	e.hist.Record(e.car.Pos, string(next))

	e.text = next
	e.relayout()
	e.car.SetPos(e.lay, lo+len(repl))
	e.revealCaret()
}
