package eye

import "fmt"

// Geometry holds the fixed dimensions of a texture set and the render buffer.
type Geometry struct {
	ScreenW, ScreenH   int // render buffer and eyelid maps
	ScleraW, ScleraH   int
	IrisW, IrisH       int // polar map
	IrisMapW, IrisMapH int // iris colour ramp: angle × radius
}

// Textures are the immutable inputs of the renderer. The engine keeps
// references and never writes to them.
//
// Polar entries pack a radius in the low 7 bits and an angle in the high 9 bits.
// Eyelid maps are height fields: a pixel is visible where the (mirrored) map value
// is above the lid threshold. A nil eyelid map is read as 255 everywhere, i.e. no
// lid. An empty iris ramp sends every pixel down the sclera path.
type Textures struct {
	Geometry

	Sclera   []uint16
	Iris     []uint16
	Polar    []uint16
	UpperLid []uint8
	LowerLid []uint8
}

// Validate checks that every table matches the geometry.
func (t *Textures) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil textures", ErrGeometry)
	}
	g := t.Geometry
	if g.ScreenW <= 0 || g.ScreenH <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrGeometry, g.ScreenW, g.ScreenH)
	}
	if g.ScleraW < g.ScreenW || g.ScleraH < g.ScreenH {
		return fmt.Errorf("%w: sclera %dx%d smaller than screen %dx%d", ErrGeometry, g.ScleraW, g.ScleraH, g.ScreenW, g.ScreenH)
	}
	if g.IrisW < 0 || g.IrisH < 0 || g.IrisW > g.ScleraW || g.IrisH > g.ScleraH {
		return fmt.Errorf("%w: iris %dx%d", ErrGeometry, g.IrisW, g.IrisH)
	}
	if g.IrisMapW < 0 || g.IrisMapH < 0 {
		return fmt.Errorf("%w: iris map %dx%d", ErrGeometry, g.IrisMapW, g.IrisMapH)
	}

	if err := checkLen("sclera", len(t.Sclera), g.ScleraW*g.ScleraH); err != nil {
		return err
	}
	if err := checkLen("polar", len(t.Polar), g.IrisW*g.IrisH); err != nil {
		return err
	}
	if err := checkLen("iris", len(t.Iris), g.IrisMapW*g.IrisMapH); err != nil {
		return err
	}
	if t.UpperLid != nil {
		if err := checkLen("upper lid", len(t.UpperLid), g.ScreenW*g.ScreenH); err != nil {
			return err
		}
	}
	if t.LowerLid != nil {
		if err := checkLen("lower lid", len(t.LowerLid), g.ScreenW*g.ScreenH); err != nil {
			return err
		}
	}
	return nil
}

func checkLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d entries, want %d", ErrTextureSize, name, got, want)
	}
	return nil
}
