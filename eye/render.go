package eye

import "eyes/rgb565"

const (
	lidFeather = 8
	lidOpen    = 255

	// Eyelid samples mix the column with its mirror 60/40 (out of 256).
	mirrorNear = 154
	mirrorFar  = 256 - mirrorNear

	polarRadiusMask = 0x7F
	polarAngleShift = 7
)

// DrawParams are the per-frame inputs of Renderer.Draw.
type DrawParams struct {
	IrisScale int // pupil scale applied to polar radii, 128 = 1:1
	ScleraX   int // top-left of the visible window in sclera space
	ScleraY   int
	Upper     int // eyelid thresholds, 0..255
	Lower     int
}

// Renderer draws one eye into a ScreenW×ScreenH buffer.
type Renderer struct {
	tex     *Textures
	gap     uint8
	sharpen bool

	irisOffX int
	irisOffY int
}

// NewRenderer validates tex and returns a renderer bound to it.
func NewRenderer(tex *Textures) (*Renderer, error) {
	if err := tex.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		tex:      tex,
		irisOffX: (tex.ScleraW - tex.IrisW) / 2,
		irisOffY: (tex.ScleraH - tex.IrisH) / 2,
	}, nil
}

func (r *Renderer) SetEyelidGap(gap uint8) { r.gap = gap }
func (r *Renderer) EyelidGap() uint8       { return r.gap }

// SetSharpen enables a second smoothstep pass over the lid coverage.
func (r *Renderer) SetSharpen(on bool) { r.sharpen = on }

// Draw renders one frame into dst, which must hold ScreenW*ScreenH pixels.
// Out-of-range window coordinates are clamped to the sclera.
func (r *Renderer) Draw(dst []uint16, p DrawParams) {
	g := &r.tex.Geometry
	w, h := g.ScreenW, g.ScreenH
	if len(dst) < w*h {
		return
	}

	scleraX := clampInt(p.ScleraX, 0, g.ScleraW-w)
	scleraY := clampInt(p.ScleraY, 0, g.ScleraH-h)
	irisScale := p.IrisScale
	if irisScale < 0 {
		irisScale = 0
	}

	uLo, uHi := float32(p.Upper-lidFeather), float32(p.Upper+lidFeather)
	lLo, lHi := float32(p.Lower-lidFeather), float32(p.Lower+lidFeather)

	irisY := scleraY - r.irisOffY
	for y := 0; y < h; y, irisY, scleraY = y+1, irisY+1, scleraY+1 {
		row := dst[y*w : (y+1)*w]
		sclera := r.tex.Sclera[scleraY*g.ScleraW+scleraX:]
		irisX := scleraX - r.irisOffX

		for x := 0; x < w; x, irisX = x+1, irisX+1 {
			ua := Smoothstep(uLo, uHi, float32(r.lidSample(r.tex.UpperLid, x, y)))
			la := Smoothstep(lLo, lHi, float32(r.lidSample(r.tex.LowerLid, x, y)))
			if ua <= 0 || la <= 0 {
				row[x] = 0
				continue
			}

			c := r.eyeColor(irisX, irisY, irisScale, sclera[x])

			alpha := min(ua, la)
			if r.sharpen {
				alpha = Smoothstep(0, 1, alpha)
			}
			row[x] = rgb565.Blend(0, c, alpha)
		}
	}
}

// lidSample reads an eyelid map symmetrically and applies the eyelid gap.
func (r *Renderer) lidSample(m []uint8, x, y int) uint8 {
	v := lidOpen
	if m != nil {
		w := r.tex.ScreenW
		row := m[y*w : (y+1)*w]
		v = (int(row[x])*mirrorNear + int(row[w-1-x])*mirrorFar) >> 8
	}
	if v <= int(r.gap) {
		return 0
	}
	return uint8(v - int(r.gap))
}

func (r *Renderer) eyeColor(irisX, irisY, irisScale int, sclera uint16) uint16 {
	g := &r.tex.Geometry
	if irisX < 0 || irisY < 0 || irisX >= g.IrisW || irisY >= g.IrisH {
		return sclera
	}
	p := int(r.tex.Polar[irisY*g.IrisW+irisX])
	dist := (irisScale * (p & polarRadiusMask)) >> 7
	if dist >= g.IrisMapH || g.IrisMapW == 0 {
		return sclera
	}
	angle := (g.IrisMapW * (p >> polarAngleShift)) >> 9
	return r.tex.Iris[dist*g.IrisMapW+angle]
}
