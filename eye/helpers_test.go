package eye

// constRand always returns v.
type constRand struct{ v uint32 }

func (r constRand) Uint32() uint32 { return r.v }

// seqRand replays vals and then returns 0.
type seqRand struct {
	vals []uint32
	i    int
}

func (r *seqRand) Uint32() uint32 {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i]
	r.i++
	return v
}

func fill16(n int, v uint16) []uint16 {
	b := make([]uint16, n)
	for i := range b {
		b[i] = v
	}
	return b
}

func fill8(n int, v uint8) []uint8 {
	b := make([]uint8, n)
	for i := range b {
		b[i] = v
	}
	return b
}

// plainTextures is a 64x64 screen over a 128x128 sclera of a single colour,
// with a zero polar map, an empty iris ramp and no eyelids.
func plainTextures(sclera uint16) *Textures {
	g := Geometry{
		ScreenW: 64, ScreenH: 64,
		ScleraW: 128, ScleraH: 128,
		IrisW: 32, IrisH: 32,
	}
	return &Textures{
		Geometry: g,
		Sclera:   fill16(g.ScleraW*g.ScleraH, sclera),
		Polar:    make([]uint16, g.IrisW*g.IrisH),
	}
}
