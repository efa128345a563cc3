//go:build !tinygo

package hal

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTerminalKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want KeyEvent
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyEvent{Code: KeyUp, Press: true}, true},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyEvent{Code: KeyTab, Press: true}, true},
		{tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone), KeyEvent{Press: true, Rune: 'o'}, true},
		{tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), KeyEvent{}, false},
	}
	for _, tt := range tests {
		got, ok := terminalKey(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("terminalKey(%v) = %+v, %v; want %+v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Fini()
	s.SetSize(8, 5)

	// 4x4 image: top rows red, bottom rows blue
	w, h := 4, 4
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if y%2 == 0 {
				pix[i] = 0xFF
			} else {
				pix[i+2] = 0xFF
			}
			pix[i+3] = 0xFF
		}
	}
	drawHalfBlocks(s, pix, w, h)

	r, _, style, _ := s.GetContent(1, 1)
	if r != '▀' {
		t.Fatalf("cell rune %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0xFF, 0, 0) || bg != tcell.NewRGBColor(0, 0, 0xFF) {
		t.Fatalf("cell colors fg=%v bg=%v", fg, bg)
	}
	if r, _, _, _ := s.GetContent(5, 0); r == '▀' {
		t.Fatal("drew past the image width")
	}
}

func TestStatusLine(t *testing.T) {
	var s statusLine
	s.Write([]byte("first\nsec"))
	if s.String() != "first" {
		t.Fatalf("status %q", s.String())
	}
	s.Write([]byte("ond\n"))
	if s.String() != "second" {
		t.Fatalf("status %q", s.String())
	}
}

func TestRunTerminalTicks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	s.SetSize(20, 10)
	steps := 0
	err := runTerminal(context.Background(), s, func(h HAL) (func() error, error) {
		h.Logger().WriteLineString("ready")
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}, nil
	}, TerminalConfig{Size: Size{Width: 8, Height: 8}, Hz: 1000})
	if err != nil {
		t.Fatalf("runTerminal: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps %d want 3", steps)
	}
}
