package editor

// Key is the closed set of special keys the engine reacts to. Printable
// input arrives as the Code rune of a KeyPress with KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyGo
	KeyTab
)

// KeyPress is a key press. Special identifies non-printable keys; for
// printable input Special is KeyNone and Code carries the rune.
type KeyPress struct {
	Code    rune
	Special Key
	Shift   bool
}

// KeyRelease is the release of a previously pressed key.
type KeyRelease struct {
	Code    rune
	Special Key
}

// Pointer is a pointer-down/move/up event in entity-local pixels.
type Pointer struct {
	X     int
	Y     int
	Touch bool
}

// action is what a handled key asks the session to do next.
type action int

const (
	actionNone action = iota
	actionFinish
	actionFinishEscaped
)
