package app

import (
	"errors"
	"flag"
	"fmt"

	"eyes/eye"
)

var ErrConfig = errors.New("app: invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Seed         uint64
	OutW, OutH   int
	Scale        float64
	Filter       string
	Gap          int
	IrisMin      int
	IrisMax      int
	Eyes         int
	DoubleBuffer bool
	Tracking     bool
	Sharpen      bool
	Overlay      bool
	Verbose      bool
}

// NewConfig returns a Config populated with the engine defaults.
func NewConfig() *Config {
	return &Config{
		Seed:    1,
		Filter:  eye.FilterNearest.String(),
		Gap:     eye.DefaultEyelidGap,
		IrisMin: eye.DefaultIrisMin,
		IrisMax: eye.DefaultIrisMax,
		Eyes:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for gaze and blinks")
	fs.IntVar(&c.OutW, "out-w", c.OutW, "output width (0 = render width)")
	fs.IntVar(&c.OutH, "out-h", c.OutH, "output height (0 = render height)")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "output/render scale (0 = fit output)")
	fs.StringVar(&c.Filter, "filter", c.Filter, "resample filter: nearest or bilinear")
	fs.IntVar(&c.Gap, "gap", c.Gap, "eyelid gap 0..255")
	fs.IntVar(&c.IrisMin, "iris-min", c.IrisMin, "smallest pupil scale")
	fs.IntVar(&c.IrisMax, "iris-max", c.IrisMax, "largest pupil scale")
	fs.IntVar(&c.Eyes, "eyes", c.Eyes, "number of eyes sharing the gaze")
	fs.BoolVar(&c.DoubleBuffer, "double-buffer", c.DoubleBuffer, "resample into a back buffer")
	fs.BoolVar(&c.Tracking, "tracking", c.Tracking, "upper lid follows the gaze")
	fs.BoolVar(&c.Sharpen, "sharpen", c.Sharpen, "sharpen eyelid edges")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "draw a status overlay")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// OutputSize returns the output dimensions for render geometry g. A zero side
// takes the matching render side, as the engine does.
func (c *Config) OutputSize(g eye.Geometry) (w, h int) {
	w, h = c.OutW, c.OutH
	if w == 0 {
		w = g.ScreenW
	}
	if h == 0 {
		h = g.ScreenH
	}
	return w, h
}

// EngineConfig converts c into an eye.Config driven by clock.
func (c *Config) EngineConfig(clock eye.Clock) (eye.Config, error) {
	filter, err := eye.ParseFilter(c.Filter)
	if err != nil {
		return eye.Config{}, err
	}
	if c.Gap < 0 || c.Gap > 255 {
		return eye.Config{}, fmt.Errorf("%w: gap %d out of range [0, 255]", ErrConfig, c.Gap)
	}
	if c.Eyes < 1 {
		return eye.Config{}, fmt.Errorf("%w: eyes %d", ErrConfig, c.Eyes)
	}

	ec := eye.DefaultConfig(clock, eye.NewRand(c.Seed))
	ec.OutW, ec.OutH = c.OutW, c.OutH
	ec.Scale = c.Scale
	ec.Filter = filter
	ec.EyelidGap = uint8(c.Gap)
	ec.IrisMin, ec.IrisMax = c.IrisMin, c.IrisMax
	ec.Eyes = c.Eyes
	ec.DoubleBuffer = c.DoubleBuffer
	ec.Tracking = c.Tracking
	ec.SharpenEdges = c.Sharpen
	return ec, nil
}
