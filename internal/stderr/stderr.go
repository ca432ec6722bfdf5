//go:build unix

// Package stderr captures stderr output from C libraries (ALSA, taglib's
// wasm runtime) that write directly to file descriptor 2, bypassing Go's
// os.Stderr. This keeps raw messages from corrupting the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Capture redirects fd 2 into a pipe and delivers each non-empty line on
// Lines until Stop is called.
type Capture struct {
	lines      chan string
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	readerDone chan struct{}
	stopOnce   sync.Once
}

// Start begins capturing stderr output.
// Must be called early in main(), before the speaker is initialised.
// On error the program can continue without capture.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:      make(chan string, 100),
		origStderr: orig,
		pipeRead:   r,
		pipeWrite:  w,
		readerDone: make(chan struct{}),
	}
	go c.read()
	return c, nil
}

func (c *Capture) read() {
	defer close(c.readerDone)
	defer close(c.lines)

	scanner := bufio.NewScanner(c.pipeRead)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// Full: drop rather than block the writer
		}
	}
}

// Lines receives captured lines. It is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.origStderr, []byte(msg))
}

// Stop restores the original stderr. Safe to call more than once.
func (c *Capture) Stop() {
	c.stopOnce.Do(func() {
		_ = unix.Dup2(c.origStderr, int(os.Stderr.Fd()))
		_ = unix.Close(c.origStderr)

		// fd 2 no longer references the pipe, so closing our write end
		// delivers EOF to the reader.
		c.pipeWrite.Close()
		<-c.readerDone
		c.pipeRead.Close()
	})
}
