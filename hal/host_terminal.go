//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal preview runner.
type TerminalConfig struct {
	Size Size
	Hz   int
}

// RunTerminal shows the framebuffer in the terminal with half-block cells
// (two pixels per cell) and forwards keys. Log lines go to the bottom row.
func RunTerminal(ctx context.Context, newApp func(HAL) (func() error, error), cfg TerminalConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	return runTerminal(ctx, screen, newApp, cfg)
}

func runTerminal(ctx context.Context, screen tcell.Screen, newApp func(HAL) (func() error, error), cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	status := &statusLine{}
	h := newHost(cfg.Size, status)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	t := time.NewTicker(d)
	defer t.Stop()

	pix := make([]byte, h.fb.width*h.fb.height*4)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if k, ok := terminalKey(ev); ok {
					h.kbd.push(k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrQuit) {
						return nil
					}
					return err
				}
			}
			h.fb.snapshotRGBA(pix)
			drawHalfBlocks(screen, pix, h.fb.width, h.fb.height)
			drawStatus(screen, status.String())
			screen.Show()
		}
	}
}

func terminalKey(ev *tcell.EventKey) (KeyEvent, bool) {
	var code KeyCode
	switch ev.Key() {
	case tcell.KeyUp:
		code = KeyUp
	case tcell.KeyDown:
		code = KeyDown
	case tcell.KeyLeft:
		code = KeyLeft
	case tcell.KeyRight:
		code = KeyRight
	case tcell.KeyEnter:
		code = KeyEnter
	case tcell.KeyEscape:
		code = KeyEscape
	case tcell.KeyTab:
		code = KeyTab
	case tcell.KeyF1:
		code = KeyF1
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	default:
		return KeyEvent{}, false
	}
	return KeyEvent{Code: code, Press: true}, true
}

// drawHalfBlocks maps a w×h RGBA image onto the screen, one '▀' per two
// pixel rows, sampling every step pixels so the frame fits the terminal.
func drawHalfBlocks(screen tcell.Screen, pix []byte, w, h int) {
	sw, sh := screen.Size()
	sh-- // status row
	if sw <= 0 || sh <= 0 || w <= 0 || h <= 0 {
		return
	}
	step := max((w+sw-1)/sw, (h+2*sh-1)/(2*sh), 1)
	at := func(x, y int) tcell.Color {
		if x >= w || y >= h {
			return tcell.ColorBlack
		}
		i := (y*w + x) * 4
		return tcell.NewRGBColor(int32(pix[i]), int32(pix[i+1]), int32(pix[i+2]))
	}
	for cy := 0; cy < sh && 2*cy*step < h; cy++ {
		for cx := 0; cx < sw && cx*step < w; cx++ {
			x, y := cx*step, 2*cy*step
			style := tcell.StyleDefault.Foreground(at(x, y)).Background(at(x, y+step))
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func drawStatus(screen tcell.Screen, s string) {
	sw, sh := screen.Size()
	if sh <= 0 {
		return
	}
	y := sh - 1
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	x := 0
	for _, r := range s {
		if x >= sw {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < sw; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// statusLine keeps the last complete log line.
type statusLine struct {
	mu   sync.Mutex
	last string
	part strings.Builder
}

func (s *statusLine) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range p {
		if b == '\n' {
			s.last = s.part.String()
			s.part.Reset()
			continue
		}
		s.part.WriteByte(b)
	}
	return len(p), nil
}

func (s *statusLine) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
