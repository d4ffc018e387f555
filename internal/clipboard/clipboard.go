// Package clipboard is the write-only clipboard boundary used when a detail
// row is copied.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
	"github.com/rotisserie/eris"
)

type Writer interface {
	WriteText(text string) error
}

// System writes to the platform clipboard (pbcopy, xclip/xsel/wl-copy, or
// the Windows API, depending on the OS).
type System struct{}

func NewSystem() *System { return &System{} }

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return eris.New("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return eris.Wrap(err, "writing to clipboard")
	}
	return nil
}

// Memory keeps the last copied string.
type Memory struct {
	mu   sync.Mutex
	last string
	n    int
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = text
	m.n++
	return nil
}

func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Writes is the number of WriteText calls so far.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
