//go:build !unix

package stderr

import "os"

// Capture is a no-op on platforms without dup2.
type Capture struct {
	lines chan string
}

// Start returns a capture that never delivers lines.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

func (c *Capture) Lines() <-chan string { return c.lines }

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Lines.
func (c *Capture) Stop() {
	select {
	case <-c.lines:
	default:
		close(c.lines)
	}
}
