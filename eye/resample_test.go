package eye

import (
	"errors"
	"math"
	"testing"
)

func pattern(n int) []uint16 {
	b := make([]uint16, n)
	r := NewRand(3)
	for i := range b {
		b[i] = uint16(r.Uint32())
	}
	return b
}

func TestResampleIdentityCopies(t *testing.T) {
	for _, f := range []Filter{FilterNearest, FilterBilinear} {
		rs, err := NewResampler(16, 8, 16, 8, f, 0)
		if err != nil {
			t.Fatalf("NewResampler: %v", err)
		}
		src := pattern(16 * 8)
		dst := make([]uint16, 16*8)
		rs.Resample(dst, src)
		for i := range src {
			if dst[i] != src[i] {
				t.Fatalf("%s: pixel %d differs: %#04x vs %#04x", f, i, dst[i], src[i])
			}
		}
	}
}

func TestResampleNearestUpscale(t *testing.T) {
	rs, err := NewResampler(4, 4, 8, 8, FilterNearest, 0)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	src := pattern(16)
	dst := make([]uint16, 64)
	rs.Resample(dst, src)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if want := src[(y/2)*4+x/2]; dst[y*8+x] != want {
				t.Fatalf("(%d,%d)=%#04x want %#04x", x, y, dst[y*8+x], want)
			}
		}
	}
}

func TestResampleNearestMaps(t *testing.T) {
	rs, err := NewResampler(8, 8, 3, 3, FilterNearest, 0)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	rs.Resample(make([]uint16, 9), make([]uint16, 64))
	want := []int32{0, 2, 5}
	for i, v := range want {
		if rs.xMap[i] != v || rs.yMap[i] != v {
			t.Fatalf("map[%d]=%d/%d want %d", i, rs.xMap[i], rs.yMap[i], v)
		}
	}
}

func TestResampleExplicitScale(t *testing.T) {
	rs, err := NewResampler(4, 4, 8, 8, FilterNearest, 4)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	rs.Resample(make([]uint16, 64), make([]uint16, 16))
	want := []int32{0, 0, 0, 0, 1, 1, 1, 1}
	for i, v := range want {
		if rs.xMap[i] != v {
			t.Fatalf("xMap[%d]=%d want %d", i, rs.xMap[i], v)
		}
	}
	if rs.Scale() != 4 {
		t.Fatalf("scale %v", rs.Scale())
	}

	rs.FitScale()
	if rs.Scale() != 2 {
		t.Fatalf("fitted scale %v want 2", rs.Scale())
	}
	rs.Resample(make([]uint16, 64), make([]uint16, 16))
	if rs.xMap[7] != 3 {
		t.Fatalf("maps not rebuilt after FitScale: %v", rs.xMap)
	}
}

func TestResampleDeterministic(t *testing.T) {
	for _, f := range []Filter{FilterNearest, FilterBilinear} {
		rs, err := NewResampler(20, 10, 33, 17, f, 0)
		if err != nil {
			t.Fatalf("NewResampler: %v", err)
		}
		src := pattern(200)
		a := make([]uint16, 33*17)
		b := make([]uint16, 33*17)
		rs.Resample(a, src)
		rs.Resample(b, src)
		rs.Resample(b, src)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: output drifted at %d", f, i)
			}
		}
	}
}

func TestResampleBilinearUniform(t *testing.T) {
	rs, err := NewResampler(10, 10, 23, 17, FilterBilinear, 0)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	dst := make([]uint16, 23*17)
	rs.Resample(dst, fill16(100, 0x8A52))
	for i, p := range dst {
		if p != 0x8A52 {
			t.Fatalf("pixel %d = %#04x", i, p)
		}
	}
}

func TestResampleBilinearInterpolates(t *testing.T) {
	rs, err := NewResampler(2, 1, 4, 1, FilterBilinear, 0)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	dst := make([]uint16, 4)
	rs.Resample(dst, []uint16{0x0000, 0x001F})
	if dst[0] != 0 {
		t.Fatalf("first pixel %#04x", dst[0])
	}
	if dst[1] == 0 || dst[1] >= 0x001F {
		t.Fatalf("expected a blend between neighbours, got %#04x", dst[1])
	}
	if dst[3] != 0x001F {
		t.Fatalf("last pixel %#04x", dst[3])
	}
}

func TestResampleShortBuffersIgnored(t *testing.T) {
	rs, err := NewResampler(4, 4, 8, 8, FilterNearest, 0)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	dst := fill16(64, 7)
	rs.Resample(dst, make([]uint16, 3))
	if dst[0] != 7 {
		t.Fatal("short source should leave dst untouched")
	}
}

func TestResamplerErrors(t *testing.T) {
	if _, err := NewResampler(0, 4, 8, 8, FilterNearest, 0); !errors.Is(err, ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
	if _, err := NewResampler(4, 4, 8, 8, FilterNearest, -1); !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("expected ErrInvalidScale, got %v", err)
	}
	if _, err := NewResampler(4, 4, 8, 8, Filter(9), 0); !errors.Is(err, ErrFilter) {
		t.Fatalf("expected ErrFilter, got %v", err)
	}

	rs, err := NewResampler(4, 4, 8, 8, FilterNearest, 0)
	if err != nil {
		t.Fatalf("NewResampler: %v", err)
	}
	for _, s := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if err := rs.SetScale(s); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("SetScale(%v): expected ErrInvalidScale, got %v", s, err)
		}
	}
}

func TestResampleTinyScaleClampsToEdge(t *testing.T) {
	src := make([]uint16, 16)
	for i := range src {
		src[i] = uint16(i + 1)
	}
	for _, f := range []Filter{FilterNearest, FilterBilinear} {
		rs, err := NewResampler(4, 4, 8, 8, f, 0)
		if err != nil {
			t.Fatalf("%s: NewResampler: %v", f, err)
		}
		if err := rs.SetScale(1e-300); err != nil {
			t.Fatalf("%s: SetScale: %v", f, err)
		}
		dst := make([]uint16, 64)
		rs.Resample(dst, src)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				sx, sy := min(x, 1)*3, min(y, 1)*3
				if got, want := dst[y*8+x], src[sy*4+sx]; got != want {
					t.Fatalf("%s: (%d,%d)=%d want %d", f, x, y, got, want)
				}
			}
		}
		if f == FilterNearest {
			want := []int32{0, 3, 3, 3, 3, 3, 3, 3}
			for i, v := range rs.xMap {
				if v != want[i] {
					t.Fatalf("xMap=%v want %v", rs.xMap, want)
				}
			}
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{in: "nearest", want: FilterNearest, ok: true},
		{in: "", want: FilterNearest, ok: true},
		{in: " Bilinear ", want: FilterBilinear, ok: true},
		{in: "lanczos", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseFilter(%q) err=%v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseFilter(%q)=%s want %s", tt.in, got, tt.want)
		}
	}
}
