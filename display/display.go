// Package display moves RGB565 frames into tinygo display drivers.
package display

import (
	"errors"
	"image/color"

	"eyes/rgb565"

	"tinygo.org/x/drivers"
)

var ErrShortBuffer = errors.New("display: buffer shorter than frame")

// BitmapDrawer is implemented by drivers (st7789, ili9341 and
// FramebufferDisplayer) that accept a whole RGB565 block at once.
type BitmapDrawer interface {
	DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error
}

// Push copies a w×h RGB565 frame to the top-left corner of d and calls
// d.Display. Pixels outside d are dropped.
func Push(d drivers.Displayer, buf []uint16, w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(buf) < w*h {
		return ErrShortBuffer
	}
	dw, dh := d.Size()
	cw, ch := min(w, int(dw)), min(h, int(dh))
	if cw <= 0 || ch <= 0 {
		return d.Display()
	}

	if bd, ok := d.(BitmapDrawer); ok && cw == w {
		if err := bd.DrawRGBBitmap(0, 0, buf[:w*ch], int16(w), int16(ch)); err != nil {
			return err
		}
		return d.Display()
	}

	for y := 0; y < ch; y++ {
		row := buf[y*w : y*w+cw]
		for x, p := range row {
			d.SetPixel(int16(x), int16(y), rgb565.ToRGBA(p))
		}
	}
	return d.Display()
}

// Fill sets every pixel of d to c without presenting.
func Fill(d drivers.Displayer, c color.RGBA) {
	w, h := d.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, c)
		}
	}
}
