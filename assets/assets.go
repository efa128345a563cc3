// Package assets generates a default eye texture set procedurally, so the
// host runner and the frame tool work without external data.
package assets

import (
	"fmt"
	"image/color"
	"math"

	"eyes/eye"
	"eyes/rgb565"
)

// Options sizes and colours a generated texture set.
type Options struct {
	eye.Geometry

	Sclera color.RGBA
	Iris   color.RGBA
	Pupil  color.RGBA

	// PupilFrac is the fraction of the iris ramp drawn as pupil.
	PupilFrac float64
	// LidArc is how far the lid edge bows towards the centre, as a fraction
	// of the screen height.
	LidArc float64
	// Seed drives the iris striations.
	Seed uint64
}

// DefaultOptions returns a 128x128 eye over a 200x200 sclera.
func DefaultOptions() Options {
	return Options{
		Geometry: eye.Geometry{
			ScreenW: 128, ScreenH: 128,
			ScleraW: 200, ScleraH: 200,
			IrisW: 80, IrisH: 80,
			IrisMapW: 256, IrisMapH: 64,
		},
		Sclera:    color.RGBA{R: 0xF4, G: 0xEE, B: 0xE6, A: 0xFF},
		Iris:      color.RGBA{R: 0x3A, G: 0x8F, B: 0x4C, A: 0xFF},
		Pupil:     color.RGBA{A: 0xFF},
		PupilFrac: 0.35,
		LidArc:    0.08,
		Seed:      1,
	}
}

// Default generates the texture set for DefaultOptions.
func Default() *eye.Textures {
	t, err := Generate(DefaultOptions())
	if err != nil {
		panic(err)
	}
	return t
}

// Generate builds a texture set for o and validates it.
func Generate(o Options) (*eye.Textures, error) {
	g := o.Geometry
	if g.IrisMapH > 127 {
		return nil, fmt.Errorf("%w: iris map height %d exceeds the polar radius range", eye.ErrGeometry, g.IrisMapH)
	}
	t := &eye.Textures{Geometry: g}
	if g.ScleraW > 0 && g.ScleraH > 0 {
		t.Sclera = sclera(g.ScleraW, g.ScleraH, o.Sclera)
	}
	if g.IrisW > 0 && g.IrisH > 0 {
		t.Polar = polar(g.IrisW, g.IrisH, g.IrisMapH)
	}
	if g.IrisMapW > 0 && g.IrisMapH > 0 {
		t.Iris = irisRamp(g.IrisMapW, g.IrisMapH, o)
	}
	if g.ScreenW > 0 && g.ScreenH > 0 {
		t.UpperLid = lid(g.ScreenW, g.ScreenH, o.LidArc, false)
		t.LowerLid = lid(g.ScreenW, g.ScreenH, o.LidArc, true)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return t, nil
}

// sclera shades c darker towards the edges.
func sclera(w, h int, c color.RGBA) []uint16 {
	pix := make([]uint16, w*h)
	cx, cy := float64(w-1)/2, float64(h-1)/2
	rmax := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / rmax
			k := 1 - 0.35*d*d
			pix[y*w+x] = rgb565.From888(shade(c.R, k), shade(c.G, k), shade(c.B, k))
		}
	}
	return pix
}

// polar encodes each iris pixel as radius (low 7 bits, IrisMapH at the iris
// edge) and angle (high 9 bits, a full turn in 512 steps).
func polar(w, h, mapH int) []uint16 {
	pix := make([]uint16, w*h)
	cx, cy := float64(w-1)/2, float64(h-1)/2
	edge := float64(min(w, h)) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			r := int(math.Hypot(dx, dy) / edge * float64(mapH))
			if r > 127 {
				r = 127
			}
			a := math.Atan2(dy, dx)
			if a < 0 {
				a += 2 * math.Pi
			}
			ai := int(a/(2*math.Pi)*512) & 0x1FF
			pix[y*w+x] = uint16(ai<<7 | r)
		}
	}
	return pix
}

// irisRamp draws the pupil at small radii and a striated iris beyond it.
func irisRamp(w, h int, o Options) []uint16 {
	pix := make([]uint16, w*h)
	rnd := eye.NewRand(o.Seed)
	stripes := make([]float64, w)
	for i := range stripes {
		stripes[i] = 0.75 + 0.25*float64(rnd.Uint32()%1024)/1023
	}
	pupil := int(o.PupilFrac * float64(h))
	for r := 0; r < h; r++ {
		row := pix[r*w : (r+1)*w]
		if r < pupil {
			c := rgb565.From888(o.Pupil.R, o.Pupil.G, o.Pupil.B)
			for i := range row {
				row[i] = c
			}
			continue
		}
		// darker ring at the outer edge
		f := float64(r-pupil) / float64(max(h-pupil, 1))
		ring := 1 - 0.5*f*f*f
		for a := range row {
			k := ring * stripes[a]
			row[a] = rgb565.From888(shade(o.Iris.R, k), shade(o.Iris.G, k), shade(o.Iris.B, k))
		}
	}
	return pix
}

// lid builds an eyelid map whose values rise away from the lid edge. The edge
// bows towards the centre by arc*h at the middle column. lower flips the map
// vertically.
func lid(w, h int, arc float64, lower bool) []uint8 {
	m := make([]uint8, w*h)
	slope := 512 / float64(h)
	for x := 0; x < w; x++ {
		u := 2*float64(x)/float64(max(w-1, 1)) - 1
		edge := float64(h) * (0.2 + arc*(1-u*u))
		for y := 0; y < h; y++ {
			yy := y
			if lower {
				yy = h - 1 - y
			}
			v := 160 + (float64(yy)-edge)*slope
			m[y*w+x] = uint8(math.Max(0, math.Min(255, v)))
		}
	}
	return m
}

func shade(c uint8, k float64) uint8 {
	v := float64(c) * k
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
