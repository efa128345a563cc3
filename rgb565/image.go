package rgb565

import (
	"image"
	"image/color"
)

// Image is an in-memory image over packed pixels.
//
// It implements draw.Image so that packed render buffers can go through the
// standard image tooling without converting them first.
type Image struct {
	Pix    []uint16
	Stride int // pixels per row
	Rect   image.Rectangle
}

// NewImage allocates an Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Wrap returns an Image backed by buf, which must hold at least w*h pixels.
func Wrap(buf []uint16, w, h int) *Image {
	return &Image{Pix: buf, Stride: w, Rect: image.Rect(0, 0, w, h)}
}

func (m *Image) ColorModel() color.Model { return Model }
func (m *Image) Bounds() image.Rectangle { return m.Rect }

func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x - m.Rect.Min.X)
}

func (m *Image) At(x, y int) color.Color { return Color(m.RGB565At(x, y)) }

func (m *Image) RGB565At(x, y int) uint16 {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)]
}

func (m *Image) Set(x, y int, c color.Color) {
	m.SetRGB565(x, y, uint16(Model.Convert(c).(Color)))
}

func (m *Image) SetRGB565(x, y int, p uint16) {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = p
}

// ToRGBA converts the image to a new *image.RGBA.
func (m *Image) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(m.Rect)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			dst.SetRGBA(x, y, ToRGBA(m.RGB565At(x, y)))
		}
	}
	return dst
}
