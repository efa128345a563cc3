// Command mkeyes renders eye frames with a fixed seed to PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eyes/app"
	"eyes/assets"
	"eyes/eye"
	"eyes/rgb565"

	"golang.org/x/image/draw"
)

type options struct {
	outDir string
	frames int
	every  int
	step   time.Duration
	zoom   int
	interp string
	cfg    app.Config
}

func main() {
	o := options{cfg: *app.NewConfig()}
	flag.StringVar(&o.outDir, "out", "", "Output directory.")
	flag.IntVar(&o.frames, "frames", 120, "Number of frames to simulate.")
	flag.IntVar(&o.every, "every", 1, "Write every Nth frame.")
	flag.DurationVar(&o.step, "step", eye.DefaultFrameInterval, "Simulated time between frames.")
	flag.IntVar(&o.zoom, "zoom", 1, "Integer zoom applied to the written PNGs.")
	flag.StringVar(&o.interp, "interp", "nearest", "nearest|bilinear|approx|catmullrom (zoom only).")
	o.cfg.Bind(flag.CommandLine)
	flag.Parse()

	if o.outDir == "" {
		fatalf("usage: mkeyes -out dir [-frames 120] [-every 1] [-zoom 1] [-interp nearest] [engine flags]")
	}
	if o.cfg.Verbose {
		eye.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	n, err := run(o)
	if err != nil {
		fatalf("mkeyes: %v", err)
	}
	fmt.Printf("wrote %d frames to %s\n", n, o.outDir)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func interpolator(name string) (draw.Interpolator, error) {
	switch strings.ToLower(name) {
	case "", "nearest":
		return draw.NearestNeighbor, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "approx":
		return draw.ApproxBiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("unknown interpolator: %s", name)
	}
}

// run simulates o.frames engine updates on a manual clock and writes the
// selected frames. It returns the number of files written.
func run(o options) (int, error) {
	if o.frames <= 0 {
		return 0, fmt.Errorf("frames out of range: %d", o.frames)
	}
	if o.every <= 0 {
		o.every = 1
	}
	if o.zoom <= 0 {
		return 0, fmt.Errorf("zoom out of range: %d", o.zoom)
	}
	if o.step <= 0 {
		o.step = eye.DefaultFrameInterval
	}
	interp, err := interpolator(o.interp)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(o.outDir, 0o755); err != nil {
		return 0, err
	}

	clock := &eye.ManualClock{}
	ec, err := o.cfg.EngineConfig(clock)
	if err != nil {
		return 0, err
	}
	e, err := eye.New(assets.Default(), ec)
	if err != nil {
		return 0, err
	}
	e.Begin()

	written := 0
	for i := 0; i < o.frames; i++ {
		if !e.Update() {
			return written, fmt.Errorf("frame %d: update rejected (step %v shorter than the frame interval)", i, o.step)
		}
		if i%o.every == 0 {
			buf, w, h := e.ScaledBuffer()
			path := filepath.Join(o.outDir, fmt.Sprintf("frame_%04d.png", i))
			if err := writePNG(path, rgb565.Wrap(buf, w, h), o.zoom, interp); err != nil {
				return written, err
			}
			written++
		}
		clock.Advance(o.step)
	}
	return written, nil
}

func writePNG(path string, src *rgb565.Image, zoom int, interp draw.Interpolator) error {
	var img image.Image = src.ToRGBA()
	if zoom > 1 {
		b := src.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
		interp.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
