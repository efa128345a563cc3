// Package rgb565 holds helpers for 16-bit packed pixels (rrrrrggggggbbbbb).
//
// Channels are kept at their native 5/6/5-bit widths by Pack/Unpack. To888 and
// From888 convert to and from 8-bit channels; To888 replicates the high bits into
// the low bits so that full-scale 5/6-bit values map to 0xFF.
package rgb565

import "image/color"

const (
	mask5 = 0x1F
	mask6 = 0x3F
)

// Pack combines native-width channels (r,b in 0..31, g in 0..63).
func Pack(r, g, b uint8) uint16 {
	return uint16(r&mask5)<<11 | uint16(g&mask6)<<5 | uint16(b&mask5)
}

// Unpack splits p into native-width channels.
func Unpack(p uint16) (r, g, b uint8) {
	return uint8(p>>11) & mask5, uint8(p>>5) & mask6, uint8(p) & mask5
}

// To888 expands p to 8-bit channels.
func To888(p uint16) (r, g, b uint8) {
	r5, g6, b5 := Unpack(p)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// From888 truncates 8-bit channels to a packed pixel.
func From888(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// ToRGBA converts p to an opaque color.RGBA.
func ToRGBA(p uint16) color.RGBA {
	r, g, b := To888(p)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// FromRGBA converts c to a packed pixel, ignoring alpha.
func FromRGBA(c color.RGBA) uint16 { return From888(c.R, c.G, c.B) }

// Color is a packed pixel that implements color.Color.
type Color uint16

func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := To888(uint16(c))
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xFFFF
}

// Model converts any color to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Color); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Color(From888(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
})
