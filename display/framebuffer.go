package display

import (
	"fmt"
	"image/color"

	"eyes/hal"
	"eyes/rgb565"
)

// FramebufferDisplayer adapts a hal.Framebuffer to drivers.Displayer.
type FramebufferDisplayer struct {
	fb hal.Framebuffer
}

func NewFramebufferDisplayer(fb hal.Framebuffer) *FramebufferDisplayer {
	return &FramebufferDisplayer{fb: fb}
}

func (d *FramebufferDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *FramebufferDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	p := rgb565.FromRGBA(c)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// DrawRGBBitmap writes a w×h block of RGB565 pixels at (x, y), clipped to the
// framebuffer.
func (d *FramebufferDisplayer) DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error {
	if d.fb == nil {
		return nil
	}
	if d.fb.Format() != hal.PixelFormatRGB565 {
		return fmt.Errorf("display: unsupported pixel format %d", d.fb.Format())
	}
	bw, bh := int(w), int(h)
	if len(data) < bw*bh {
		return ErrShortBuffer
	}
	buf := d.fb.Buffer()
	fw, fh, stride := d.fb.Width(), d.fb.Height(), d.fb.StrideBytes()
	for row := 0; row < bh; row++ {
		fy := int(y) + row
		if fy < 0 || fy >= fh {
			continue
		}
		for col := 0; col < bw; col++ {
			fx := int(x) + col
			if fx < 0 || fx >= fw {
				continue
			}
			p := data[row*bw+col]
			off := fy*stride + fx*2
			buf[off] = byte(p)
			buf[off+1] = byte(p >> 8)
		}
	}
	return nil
}

func (d *FramebufferDisplayer) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}
