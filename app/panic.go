package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"eyes/display"

	"tinygo.org/x/tinyfont"
)

// recoverStep turns a panic inside Step into an error, after logging the
// stack and painting it on the framebuffer.
func (a *App) recoverStep(err *error) {
	v := recover()
	if v == nil {
		return
	}
	stack := debug.Stack()

	lines := []string{"eyes panic:", fmt.Sprintf("panic: %v", v)}
	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("eyes panic: %v", v))
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		if l := a.h.Logger(); l != nil {
			l.WriteLineString(line)
		}
		lines = append(lines, line)
	}

	if a.disp != nil {
		a.paintPanic(lines)
	}
	*err = fmt.Errorf("app: panic: %v", v)
}

func (a *App) paintPanic(lines []string) {
	o := *a.overlay
	o.FG = color.RGBA{A: 0xFF}
	o.BG = color.RGBA{}
	o.X, o.Y = 0, 0

	display.Fill(a.disp, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if o.Font == nil {
		_ = a.disp.Display()
		return
	}

	w, h := a.disp.Size()
	cw := charWidth(o)
	cols := int16(1)
	if cw > 0 {
		cols = max(w/cw, 1)
	}
	lineH := int16(o.Font.GetYAdvance())
	maxLines := int(h / max(lineH, 1))

	var wrapped []string
	for _, line := range lines {
		for len(line) > 0 && len(wrapped) < maxLines {
			chunk, rest := takeRunes(line, cols)
			wrapped = append(wrapped, chunk)
			line = strings.TrimLeft(rest, " ")
		}
	}
	o.Draw(a.disp, wrapped...)
	_ = a.disp.Display()
}

func charWidth(o display.Overlay) int16 {
	if o.Font == nil {
		return 0
	}
	_, outboxWidth := tinyfont.LineWidth(o.Font, "0")
	return int16(outboxWidth)
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
