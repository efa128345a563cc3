//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Size is the host framebuffer size.
type Size struct {
	Width  int
	Height int
}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return Size{Width: 240, Height: 240}
	}
	return s
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	clock  *hostClock
}

// New returns a host HAL with a framebuffer of the given size that logs to
// stdout.
func New(size Size) HAL {
	return newHost(size, os.Stdout)
}

func newHost(size Size, w io.Writer) *hostHAL {
	size = size.orDefault()
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(size.Width, size.Height),
		kbd:    newHostKeyboard(),
		clock:  newHostClock(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostClock struct {
	start time.Time
}

func newHostClock() *hostClock { return &hostClock{start: time.Now()} }

// Micros uses the monotonic reading carried by start.
func (c *hostClock) Micros() uint64 {
	return uint64(time.Since(c.start) / time.Microsecond)
}

// push queues ev for the app, dropping it when the queue is full.
func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
