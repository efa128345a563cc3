package eye

import "time"

const (
	DefaultEyelidGap     = 20
	DefaultIrisMin       = 90
	DefaultIrisMax       = 130
	DefaultFrameInterval = time.Second / 60
)

// Config controls an Engine. Start from DefaultConfig: EyelidGap and the
// boolean switches are taken as given, while zero sizes, counts and intervals
// fall back to their defaults.
type Config struct {
	Clock Clock
	Rand  Rand

	// OutW×OutH is the scaled output size. Zero means the render size.
	OutW, OutH int
	// Scale is the output/input ratio used by the resampler. Zero fits the
	// output buffer; negative values are rejected by New.
	Scale  float64
	Filter Filter

	EyelidGap uint8
	IrisMin   int
	IrisMax   int
	// IrisScale is the initial pupil scale. Zero means the midpoint of
	// [IrisMin, IrisMax].
	IrisScale int

	// FrameInterval is the minimum time between accepted updates. Negative
	// disables the cap.
	FrameInterval time.Duration

	// Eyes is the number of eyes sharing the gaze. Zero means one.
	Eyes int

	// DoubleBuffer resamples into a back buffer and swaps it under the
	// output lock.
	DoubleBuffer bool
	// Tracking lets the upper lid follow the gaze.
	Tracking bool
	// SharpenEdges applies a second smoothstep to the lid coverage.
	SharpenEdges bool
}

// DefaultConfig returns the defaults with the given time and random sources.
func DefaultConfig(clock Clock, rnd Rand) Config {
	return Config{
		Clock:         clock,
		Rand:          rnd,
		Filter:        FilterNearest,
		EyelidGap:     DefaultEyelidGap,
		IrisMin:       DefaultIrisMin,
		IrisMax:       DefaultIrisMax,
		FrameInterval: DefaultFrameInterval,
		Eyes:          1,
	}
}

func (c Config) withDefaults(g Geometry) Config {
	if c.OutW == 0 {
		c.OutW = g.ScreenW
	}
	if c.OutH == 0 {
		c.OutH = g.ScreenH
	}
	if c.IrisMin == 0 && c.IrisMax == 0 {
		c.IrisMin, c.IrisMax = DefaultIrisMin, DefaultIrisMax
	}
	if c.IrisScale == 0 {
		c.IrisScale = (c.IrisMin + c.IrisMax) / 2
	}
	if c.FrameInterval == 0 {
		c.FrameInterval = DefaultFrameInterval
	}
	if c.Eyes <= 0 {
		c.Eyes = 1
	}
	return c
}
