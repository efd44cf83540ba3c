// Package history keeps the bounded undo/redo snapshot list of one editable
// text. Snapshots pair the full text with the caret position that was live
// when the text was current; the newest snapshot's caret stays unresolved
// until the user either edits again or navigates backward.
package history

// Snapshot is one history level: the complete text and the caret position
// to restore with it.
type Snapshot struct {
	Text  string
	Caret int
}

// Manager is a bounded list of snapshots with an active level. The active
// level is always in [1, len]; capacity 0 disables recording entirely.
type Manager struct {
	levels   []Snapshot
	level    int
	capacity int
}

// New seeds the manager with the initial text at level 1. A capacity of 0
// turns every operation into a no-op.
func New(capacity int, initial Snapshot) *Manager {
	m := &Manager{capacity: capacity}
	if capacity > 0 {
		m.levels = append(m.levels, initial)
		m.level = 1
	}
	return m
}

// Enabled reports whether edits are being recorded.
func (m *Manager) Enabled() bool {
	return m.capacity > 0
}

// Level returns the active level, 0 when disabled.
func (m *Manager) Level() int {
	return m.level
}

// Len returns the number of recorded levels.
func (m *Manager) Len() int {
	return len(m.levels)
}

// Record registers a text-changing edit: any redo branch beyond the active
// level is discarded, the caret that was live before the edit completes the
// active level's snapshot, and the new text is appended as the next level.
// At capacity the oldest level is evicted first.
func (m *Manager) Record(prevCaret int, newText string) {
	if !m.Enabled() {
		return
	}

	m.levels = m.levels[:m.level]
	m.levels[m.level-1].Caret = prevCaret

	// The list holds the current state plus up to capacity undoable ones.
	if len(m.levels) == m.capacity+1 {
		copy(m.levels, m.levels[1:])
		m.levels = m.levels[:len(m.levels)-1]
		m.level--
	}

	m.levels = append(m.levels, Snapshot{Text: newText})
	m.level++
}

// Navigate moves the active level by delta, clamped into [1, len]. When the
// first backward step leaves the newest level, the live caret is captured
// into that level so a later redo restores the caret the user actually had.
// The returned snapshot is the new active state; ok is false when the level
// did not change (including when history is disabled).
func (m *Manager) Navigate(delta, liveCaret int) (Snapshot, bool) {
	if !m.Enabled() || len(m.levels) == 0 {
		return Snapshot{}, false
	}

	target := clamp(m.level+delta, 1, len(m.levels))
	if target == m.level {
		return Snapshot{}, false
	}

	if target < m.level && m.level == len(m.levels) {
		m.levels[m.level-1].Caret = liveCaret
	}

	m.level = target
	return m.levels[m.level-1], true
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
