package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay draws status lines over a frame.
type Overlay struct {
	Font tinyfont.Fonter
	FG   color.RGBA
	BG   color.RGBA // drawn behind each line unless transparent
	X, Y int16
}

func NewOverlay() *Overlay {
	return &Overlay{
		Font: &proggy.TinySZ8pt7b,
		FG:   color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF},
		BG:   color.RGBA{A: 0xFF},
		X:    2,
		Y:    2,
	}
}

// Draw writes lines top-down starting at (X, Y). It does not call Display.
func (o *Overlay) Draw(d drivers.Displayer, lines ...string) {
	if o.Font == nil {
		return
	}
	h := int16(o.Font.GetYAdvance())
	y := o.Y
	for _, s := range lines {
		if o.BG.A != 0 {
			_, w := tinyfont.LineWidth(o.Font, s)
			fillRect(d, o.X, y, int16(w), h, o.BG)
		}
		tinyfont.WriteLine(d, o.Font, o.X, y+h-2, s, o.FG)
		y += h
	}
}

func fillRect(d drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			d.SetPixel(xx, yy, c)
		}
	}
}
