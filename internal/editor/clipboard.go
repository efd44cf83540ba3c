package editor

import (
	"github.com/atotto/clipboard"
)

// Clipboard writes through to the host clipboard on a best-effort basis and
// keeps an in-process buffer that survives host failures. Host errors are
// swallowed: the internal buffer is always written and always readable.
type Clipboard struct {
	buf string

	readAll  func() (string, error)
	writeAll func(string) error
}

func newClipboard() *Clipboard {
	return &Clipboard{
		readAll:  clipboard.ReadAll,
		writeAll: clipboard.WriteAll,
	}
}

// Write stores s in the internal buffer and forwards it to the host.
func (c *Clipboard) Write(s string) {
	c.buf = s
	if c.writeAll != nil {
		_ = c.writeAll(s)
	}
}

// Read prefers the host clipboard and falls back to the internal buffer
// when the host is unavailable.
func (c *Clipboard) Read() string {
	if c.readAll != nil {
		if s, err := c.readAll(); err == nil {
			return s
		}
	}
	return c.buf
}
