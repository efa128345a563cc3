package eye

import (
	"fmt"
	"math"
	"strings"
)

// Filter selects how the render buffer is mapped onto the output buffer.
type Filter uint8

const (
	// FilterNearest gathers through index tables built once per scale.
	FilterNearest Filter = iota
	// FilterBilinear mixes the four nearest source pixels. Weights are
	// recomputed on every call, so it costs roughly four times as much.
	FilterBilinear
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("filter(%d)", uint8(f))
	}
}

// ParseFilter parses "nearest" or "bilinear".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest", "nn":
		return FilterNearest, nil
	case "bilinear", "linear":
		return FilterBilinear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFilter, s)
	}
}

const bilinearShift = 8

// Resampler maps a srcW×srcH buffer onto a dstW×dstH buffer.
//
// Matching dimensions are copied as is. Otherwise the filter chosen at
// construction is used for every call.
type Resampler struct {
	srcW, srcH int
	dstW, dstH int
	filter     Filter

	// scale is the explicit output/input ratio; 0 derives it per axis from the
	// buffer dimensions.
	scale float64

	xMap   []int32
	yMap   []int32
	mapped bool
}

// NewResampler returns a resampler for fixed buffer dimensions. A zero scale
// fits the output: each axis then uses dst/src.
func NewResampler(srcW, srcH, dstW, dstH int, filter Filter, scale float64) (*Resampler, error) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("%w: resample %dx%d -> %dx%d", ErrGeometry, srcW, srcH, dstW, dstH)
	}
	if filter != FilterNearest && filter != FilterBilinear {
		return nil, fmt.Errorf("%w: %s", ErrFilter, filter)
	}
	r := &Resampler{
		srcW: srcW, srcH: srcH,
		dstW: dstW, dstH: dstH,
		filter: filter,
	}
	if filter == FilterNearest {
		r.xMap = make([]int32, dstW)
		r.yMap = make([]int32, dstH)
	}
	if scale != 0 {
		if err := r.SetScale(scale); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Resampler) Filter() Filter { return r.filter }

// Identity reports whether Resample is a plain copy.
func (r *Resampler) Identity() bool { return r.srcW == r.dstW && r.srcH == r.dstH }

// Scale returns the horizontal output/input ratio in effect.
func (r *Resampler) Scale() float64 {
	if r.scale == 0 {
		return float64(r.dstW) / float64(r.srcW)
	}
	return r.scale
}

// SetScale sets an explicit output/input ratio. The nearest-neighbour tables
// are rebuilt on the next call.
func (r *Resampler) SetScale(s float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	r.scale = s
	r.mapped = false
	return nil
}

// FitScale drops an explicit ratio so that each axis maps dst onto src.
func (r *Resampler) FitScale() {
	r.scale = 0
	r.mapped = false
}

// Resample writes src into dst. Short buffers are left untouched.
func (r *Resampler) Resample(dst, src []uint16) {
	if len(src) < r.srcW*r.srcH || len(dst) < r.dstW*r.dstH {
		return
	}
	if r.Identity() {
		copy(dst[:r.dstW*r.dstH], src)
		return
	}
	if r.filter == FilterBilinear {
		r.bilinear(dst, src)
		return
	}
	if !r.mapped {
		r.buildMaps()
	}
	for y := 0; y < r.dstH; y++ {
		srow := src[int(r.yMap[y])*r.srcW:]
		drow := dst[y*r.dstW : (y+1)*r.dstW]
		for x := range drow {
			drow[x] = srow[r.xMap[x]]
		}
	}
}

func (r *Resampler) buildMaps() {
	fillMap(r.xMap, r.srcW, r.dstW, r.scale)
	fillMap(r.yMap, r.srcH, r.dstH, r.scale)
	r.mapped = true
}

func fillMap(m []int32, src, dst int, scale float64) {
	for i := range m {
		var v int
		if scale == 0 {
			v = i * src / dst
		} else {
			v = int(clampCoord(float64(i)/scale, src))
		}
		m[i] = int32(clampInt(v, 0, src-1))
	}
}

// sourceCoord returns the source position of output coordinate i as an integer
// part and an 8-bit fraction.
func (r *Resampler) sourceCoord(i, src, dst int) (i0, i1 int, frac int32) {
	var f float64
	if r.scale == 0 {
		f = float64(i) * float64(src) / float64(dst)
	} else {
		f = float64(i) / r.scale
	}
	f = clampCoord(f, src)
	i0 = int(f)
	if i0 >= src-1 {
		return src - 1, src - 1, 0
	}
	return i0, i0 + 1, int32((f - float64(i0)) * (1 << bilinearShift))
}

// clampCoord limits a source coordinate to [0, src-1] before it is converted
// to an integer. Tiny scales push i/scale far past the int range.
func clampCoord(f float64, src int) float64 {
	if !(f > 0) {
		return 0
	}
	return min(f, float64(src-1))
}

func (r *Resampler) bilinear(dst, src []uint16) {
	const one = 1 << bilinearShift
	for y := 0; y < r.dstH; y++ {
		y0, y1, wy := r.sourceCoord(y, r.srcH, r.dstH)
		row0 := src[y0*r.srcW:]
		row1 := src[y1*r.srcW:]
		drow := dst[y*r.dstW : (y+1)*r.dstW]
		for x := range drow {
			x0, x1, wx := r.sourceCoord(x, r.srcW, r.dstW)
			w00 := (one - wx) * (one - wy)
			w10 := wx * (one - wy)
			w01 := (one - wx) * wy
			w11 := wx * wy
			drow[x] = mix4(row0[x0], row0[x1], row1[x0], row1[x1], w00, w10, w01, w11)
		}
	}
}

func mix4(p00, p10, p01, p11 uint16, w00, w10, w01, w11 int32) uint16 {
	ch := func(shift, mask uint16) uint16 {
		v := int32(p00>>shift&mask)*w00 +
			int32(p10>>shift&mask)*w10 +
			int32(p01>>shift&mask)*w01 +
			int32(p11>>shift&mask)*w11
		return uint16(v>>(2*bilinearShift)) & mask
	}
	return ch(11, 0x1F)<<11 | ch(5, 0x3F)<<5 | ch(0, 0x1F)
}
