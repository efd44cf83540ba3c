package history

import "testing"

func TestRecordAndUndoRedoRoundTrip(t *testing.T) {
	m := New(8, Snapshot{Text: "", Caret: 1})

	texts := []string{"a", "ab", "abc"}
	carets := []int{1, 2, 3}
	for i, text := range texts {
		m.Record(carets[i], text)
	}

	// Undo all the way down, checking text and caret at every step.
	for i := len(texts) - 1; i >= 1; i-- {
		snap, ok := m.Navigate(-1, 4)
		if !ok {
			t.Fatalf("undo %d should move", i)
		}
		if snap.Text != texts[i-1] || snap.Caret != carets[i] {
			t.Fatalf("undo to %d: expected (%q,%d), got (%q,%d)",
				i, texts[i-1], carets[i], snap.Text, snap.Caret)
		}
	}
	snap, ok := m.Navigate(-1, 4)
	if !ok || snap.Text != "" || snap.Caret != carets[0] {
		t.Fatalf("expected initial snapshot, got (%q,%d) ok=%v", snap.Text, snap.Caret, ok)
	}

	// And back up: the final redo restores the caret that was live when the
	// first undo happened.
	for _, want := range texts[:len(texts)-1] {
		snap, ok = m.Navigate(1, 0)
		if !ok || snap.Text != want {
			t.Fatalf("redo: expected %q, got %q ok=%v", want, snap.Text, ok)
		}
	}
	snap, ok = m.Navigate(1, 0)
	if !ok || snap.Text != "abc" || snap.Caret != 4 {
		t.Fatalf("final redo should restore live caret 4, got (%q,%d)", snap.Text, snap.Caret)
	}
}

func TestCapacityEvictsOldestSlot(t *testing.T) {
	m := New(2, Snapshot{Text: "", Caret: 1})

	m.Record(1, "e1")
	m.Record(2, "e2")
	m.Record(3, "e3")

	// Two undos recover the result of the first edit: only the pre-e1 slot
	// was evicted, not e1's own result.
	if _, ok := m.Navigate(-1, 3); !ok {
		t.Fatalf("first undo should move")
	}
	snap, ok := m.Navigate(-1, 3)
	if !ok || snap.Text != "e1" {
		t.Fatalf("expected %q after two undos, got %q ok=%v", "e1", snap.Text, ok)
	}

	// A third undo has nowhere to go.
	if _, ok := m.Navigate(-1, 3); ok {
		t.Fatalf("undo past the oldest level should be a no-op")
	}
}

func TestRecordTruncatesRedoBranch(t *testing.T) {
	m := New(8, Snapshot{Text: "", Caret: 1})
	m.Record(1, "one")
	m.Record(2, "two")

	if _, ok := m.Navigate(-1, 4); !ok {
		t.Fatalf("undo should move")
	}
	m.Record(2, "fork")

	if _, ok := m.Navigate(1, 0); ok {
		t.Fatalf("redo branch should have been discarded")
	}
	snap, ok := m.Navigate(-1, 5)
	if !ok || snap.Text != "one" {
		t.Fatalf("expected %q below the fork, got %q", "one", snap.Text)
	}
}

func TestNavigateClampsSilently(t *testing.T) {
	m := New(4, Snapshot{Text: "", Caret: 1})
	m.Record(1, "x")

	snap, ok := m.Navigate(-100, 2)
	if !ok || snap.Text != "" {
		t.Fatalf("large undo delta should clamp to level 1, got %q ok=%v", snap.Text, ok)
	}
	snap, ok = m.Navigate(100, 0)
	if !ok || snap.Text != "x" {
		t.Fatalf("large redo delta should clamp to the newest level, got %q ok=%v", snap.Text, ok)
	}
}

func TestZeroCapacityDisablesHistory(t *testing.T) {
	m := New(0, Snapshot{Text: "seed", Caret: 1})

	m.Record(1, "x")
	if m.Len() != 0 {
		t.Fatalf("disabled history must not record, len=%d", m.Len())
	}
	if _, ok := m.Navigate(-1, 1); ok {
		t.Fatalf("disabled history must not navigate")
	}
}
