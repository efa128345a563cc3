package rgb565

const (
	alphaShift = 10
	alphaOne   = 1 << alphaShift
)

// Blend interpolates from c1 (alpha 0) to c2 (alpha 1).
//
// The boundary alphas return c1 and c2 unchanged. In between, channels are
// expanded to 8 bits and mixed with a 10-bit fixed-point weight, which avoids
// the banding of mixing the raw 5/6-bit values.
func Blend(c1, c2 uint16, alpha float32) uint16 {
	if !(alpha > 0) {
		return c1
	}
	if alpha >= 1 {
		return c2
	}
	a := int32(alpha * alphaOne)
	r1, g1, b1 := To888(c1)
	r2, g2, b2 := To888(c2)
	return From888(lerp8(r1, r2, a), lerp8(g1, g2, a), lerp8(b1, b2, a))
}

func lerp8(x, y uint8, a int32) uint8 {
	return uint8(int32(x) + (int32(y)-int32(x))*a>>alphaShift)
}
