package eye

import (
	"fmt"
	"sync"
	"time"
)

const fpsWindowMicros = 1_000_000

// Eye is the per-eye state. All eyes look through the same Gaze; each blinks on
// its own schedule and may be shifted horizontally by XOffset pixels.
type Eye struct {
	Blink   *Blink
	XOffset int
}

// Stats are frame counters maintained by Update.
type Stats struct {
	Frames uint64 // accepted updates since Begin
	FPS    uint32 // frames in the last complete one-second window
}

// Engine ties the controllers, the renderer and the resampler together.
type Engine struct {
	cfg Config
	tex *Textures

	renderer  *Renderer
	resampler *Resampler
	gaze      *Gaze

	eyes    []Eye
	current int
	started bool

	irisScale int
	interval  uint64

	// tracked upper threshold, kept across frames
	upper int

	render []uint16

	mu     sync.Mutex
	scaled [2][]uint16
	front  int

	lastUpdate uint64
	updated    bool

	frames      uint64
	windowCount uint32
	windowStart uint64
	fps         uint32
}

// New validates tex and cfg and allocates every buffer the engine will use.
func New(tex *Textures, cfg Config) (*Engine, error) {
	if cfg.Clock == nil || cfg.Rand == nil {
		return nil, ErrNilSource
	}
	r, err := NewRenderer(tex)
	if err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults(tex.Geometry)

	if cfg.IrisMin < 0 || cfg.IrisMax < cfg.IrisMin {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrIrisRange, cfg.IrisMin, cfg.IrisMax)
	}
	rs, err := NewResampler(tex.ScreenW, tex.ScreenH, cfg.OutW, cfg.OutH, cfg.Filter, cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("eye: resampler: %w", err)
	}

	r.SetEyelidGap(cfg.EyelidGap)
	r.SetSharpen(cfg.SharpenEdges)

	e := &Engine{
		cfg:       cfg,
		tex:       tex,
		renderer:  r,
		resampler: rs,
		irisScale: clampInt(cfg.IrisScale, cfg.IrisMin, cfg.IrisMax),
		upper:     ThresholdResting,
		render:    make([]uint16, tex.ScreenW*tex.ScreenH),
	}
	if cfg.FrameInterval > 0 {
		e.interval = uint64(cfg.FrameInterval / time.Microsecond)
	}
	e.scaled[0] = make([]uint16, cfg.OutW*cfg.OutH)
	if cfg.DoubleBuffer {
		e.scaled[1] = make([]uint16, cfg.OutW*cfg.OutH)
	}

	Logger().Debug("eye engine",
		"screen", fmt.Sprintf("%dx%d", tex.ScreenW, tex.ScreenH),
		"out", fmt.Sprintf("%dx%d", cfg.OutW, cfg.OutH),
		"filter", cfg.Filter.String(),
		"double_buffer", cfg.DoubleBuffer,
	)
	return e, nil
}

// Begin creates the eyes and the gaze controller. Calling it again resets the
// animation state.
func (e *Engine) Begin() {
	e.gaze = NewGaze(e.cfg.Rand)
	e.eyes = make([]Eye, e.cfg.Eyes)
	for i := range e.eyes {
		e.eyes[i].Blink = NewBlink(e.cfg.Rand)
	}
	e.current = 0
	e.upper = ThresholdResting
	e.updated = false
	e.frames, e.windowCount, e.fps = 0, 0, 0
	e.windowStart = e.cfg.Clock.Micros()
	e.started = true
	Logger().Info("eye engine started", "eyes", len(e.eyes))
}

// Update advances the animation and renders one frame. It returns false without
// touching any buffer if Begin has not been called or the previous accepted
// update was less than FrameInterval ago.
func (e *Engine) Update() bool {
	if !e.started {
		return false
	}
	now := e.cfg.Clock.Micros()
	if e.updated && e.interval > 0 && elapsed(now, e.lastUpdate) < e.interval {
		return false
	}
	e.updated = true
	e.lastUpdate = now

	gx, gy := e.gaze.Tick(now)
	for i := range e.eyes {
		e.eyes[i].Blink.Tick(now)
	}

	spanX := e.tex.ScleraW - e.tex.ScreenW
	spanY := e.tex.ScleraH - e.tex.ScreenH
	px := PixelOffset(gx, spanX)
	py := PixelOffset(gy, spanY)

	cur := &e.eyes[e.current]
	upper, lower := e.thresholds(px, py)
	if cur.Blink.State() != BlinkOpen {
		n := int(Threshold(uint8(upper), cur.Blink.Openness(now)))
		upper, lower = n, n
	}

	e.renderer.Draw(e.render, DrawParams{
		IrisScale: e.irisScale,
		ScleraX:   clampInt(px+cur.XOffset, 0, spanX),
		ScleraY:   py,
		Upper:     upper,
		Lower:     lower,
	})
	e.resample()
	e.count(now)
	return true
}

// thresholds returns the resting upper and lower lid thresholds. With tracking
// the upper lid eases towards the lid map value just above the iris.
func (e *Engine) thresholds(px, py int) (upper, lower int) {
	if !e.cfg.Tracking || e.tex.UpperLid == nil {
		return ThresholdResting, ThresholdResting
	}
	w, h := e.tex.ScreenW, e.tex.ScreenH
	sx := clampInt(e.tex.ScleraW/2-px/2, 0, w-1)
	sy := e.tex.ScleraH/2 - (py + e.tex.IrisH/4)

	n := 0
	if sy >= 0 {
		row := e.tex.UpperLid[min(sy, h-1)*w:]
		n = (int(row[sx]) + int(row[w-1-sx])) / 2
	}
	e.upper = (e.upper*3 + n) / 4
	return e.upper, ThresholdClosed - e.upper
}

func (e *Engine) resample() {
	if !e.cfg.DoubleBuffer {
		e.mu.Lock()
		e.resampler.Resample(e.scaled[0], e.render)
		e.mu.Unlock()
		return
	}
	back := e.scaled[1-e.front]
	e.resampler.Resample(back, e.render)
	e.mu.Lock()
	e.front = 1 - e.front
	e.mu.Unlock()
}

func (e *Engine) count(now uint64) {
	e.frames++
	e.windowCount++
	if elapsed(now, e.windowStart) < fpsWindowMicros {
		return
	}
	e.fps = e.windowCount
	e.windowCount = 0
	e.windowStart = now
	Logger().Info("eye fps", "fps", e.fps)
}

// Buffer returns the render buffer (row-major, ScreenW×ScreenH).
func (e *Engine) Buffer() (buf []uint16, w, h int) {
	return e.render, e.tex.ScreenW, e.tex.ScreenH
}

// ScaledBuffer returns the current output buffer. The returned slice is not
// protected once this returns; readers on other goroutines should use
// ReadScaled.
func (e *Engine) ScaledBuffer() (buf []uint16, w, h int) {
	e.mu.Lock()
	buf = e.scaled[e.front]
	e.mu.Unlock()
	return buf, e.cfg.OutW, e.cfg.OutH
}

// ReadScaled calls fn with the latest complete output frame while holding the
// output lock. fn must not retain buf or call back into the engine.
func (e *Engine) ReadScaled(fn func(buf []uint16, w, h int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.scaled[e.front], e.cfg.OutW, e.cfg.OutH)
}

func (e *Engine) SetEyelidGap(gap uint8) { e.renderer.SetEyelidGap(gap) }
func (e *Engine) EyelidGap() uint8       { return e.renderer.EyelidGap() }

// SetScale changes the resampler ratio. It has no visible effect when the
// render and output sizes match. Like every setter it must be called from the
// goroutine that calls Update.
func (e *Engine) SetScale(s float64) error {
	return e.resampler.SetScale(s)
}

// FitScale restores the default ratio that maps the render buffer onto the
// whole output buffer. Call it from the Update goroutine.
func (e *Engine) FitScale() {
	e.resampler.FitScale()
}

func (e *Engine) Scale() float64 { return e.resampler.Scale() }

// SetIrisScale sets the pupil scale clamped to [IrisMin, IrisMax] and returns
// the value applied.
func (e *Engine) SetIrisScale(v int) int {
	e.irisScale = clampInt(v, e.cfg.IrisMin, e.cfg.IrisMax)
	return e.irisScale
}

func (e *Engine) IrisScale() int { return e.irisScale }

// IrisRange returns the configured pupil scale bounds.
func (e *Engine) IrisRange() (lo, hi int) { return e.cfg.IrisMin, e.cfg.IrisMax }

// SetCurrentEye selects which eye Update renders.
func (e *Engine) SetCurrentEye(i int) error {
	if i < 0 || i >= len(e.eyes) {
		return fmt.Errorf("%w: %d of %d", ErrEyeIndex, i, len(e.eyes))
	}
	e.current = i
	return nil
}

func (e *Engine) CurrentEye() int { return e.current }

// EyeCount returns the number of eyes created by Begin.
func (e *Engine) EyeCount() int { return len(e.eyes) }

// Eye returns a copy of the state of eye i.
func (e *Engine) Eye(i int) (Eye, error) {
	if i < 0 || i >= len(e.eyes) {
		return Eye{}, fmt.Errorf("%w: %d of %d", ErrEyeIndex, i, len(e.eyes))
	}
	return e.eyes[i], nil
}

// SetEyeOffset shifts eye i horizontally in sclera space.
func (e *Engine) SetEyeOffset(i, dx int) error {
	if i < 0 || i >= len(e.eyes) {
		return fmt.Errorf("%w: %d of %d", ErrEyeIndex, i, len(e.eyes))
	}
	e.eyes[i].XOffset = dx
	return nil
}

// Gaze returns the shared gaze controller (nil before Begin).
func (e *Engine) Gaze() *Gaze { return e.gaze }

func (e *Engine) Stats() Stats { return Stats{Frames: e.frames, FPS: e.fps} }

// Geometry returns the texture geometry the engine was built with.
func (e *Engine) Geometry() Geometry { return e.tex.Geometry }
