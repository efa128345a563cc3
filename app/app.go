// Package app drives the eye engine from a hal: it is the scheduler that
// calls Update, the consumer of the scaled buffer and the key handler.
package app

import (
	"fmt"
	"log/slog"

	"eyes/assets"
	"eyes/display"
	"eyes/eye"
	"eyes/hal"
	"eyes/internal/buildinfo"
)

const (
	gapStep   = 4
	irisStep  = 4
	scaleStep = 1.25
)

// App owns the engine and presents its frames on the hal framebuffer.
type App struct {
	h      hal.HAL
	cfg    Config
	log    *slog.Logger
	engine *eye.Engine

	disp        *display.FramebufferDisplayer
	overlay     *display.Overlay
	showOverlay bool

	keys <-chan hal.KeyEvent
}

// New builds the engine over the default textures.
func New(h hal.HAL, cfg Config) (*App, error) {
	return NewWithTextures(h, cfg, assets.Default())
}

// NewWithTextures builds the engine over tex.
func NewWithTextures(h hal.HAL, cfg Config, tex *eye.Textures) (*App, error) {
	log := newLogger(h.Logger(), cfg.Verbose)
	eye.SetLogger(log)

	ec, err := cfg.EngineConfig(h.Clock())
	if err != nil {
		return nil, err
	}
	e, err := eye.New(tex, ec)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{
		h:           h,
		cfg:         cfg,
		log:         log,
		engine:      e,
		overlay:     display.NewOverlay(),
		showOverlay: cfg.Overlay,
	}
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			a.disp = display.NewFramebufferDisplayer(fb)
			fb.ClearRGB(0, 0, 0)
		}
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			a.keys = kbd.Events()
		}
	}

	e.Begin()
	g := e.Geometry()
	_, w, hh := e.ScaledBuffer()
	log.Info("eyes started",
		"version", buildinfo.String(),
		"render", fmt.Sprintf("%dx%d", g.ScreenW, g.ScreenH),
		"out", fmt.Sprintf("%dx%d", w, hh),
		"filter", ec.Filter.String(),
	)
	return a, nil
}

// Runner adapts New to the hal runners.
func Runner(cfg Config) func(hal.HAL) (func() error, error) {
	return func(h hal.HAL) (func() error, error) {
		a, err := New(h, cfg)
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}
}

func (a *App) Engine() *eye.Engine { return a.engine }

// Step handles pending keys, advances the engine and presents a new frame if
// one was rendered. It returns hal.ErrQuit when the user asks to leave.
func (a *App) Step() (err error) {
	defer a.recoverStep(&err)

	if err := a.drainKeys(); err != nil {
		return err
	}
	if !a.engine.Update() {
		return nil
	}
	return a.present()
}

func (a *App) drainKeys() error {
	for {
		select {
		case ev, ok := <-a.keys:
			if !ok {
				a.keys = nil
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	e := a.engine
	switch ev.Code {
	case hal.KeyEscape:
		return hal.ErrQuit
	case hal.KeyUp:
		e.SetEyelidGap(uint8(min(int(e.EyelidGap())+gapStep, 255)))
		a.log.Debug("eyelid gap", "gap", e.EyelidGap())
	case hal.KeyDown:
		e.SetEyelidGap(uint8(max(int(e.EyelidGap())-gapStep, 0)))
		a.log.Debug("eyelid gap", "gap", e.EyelidGap())
	case hal.KeyRight:
		a.log.Debug("iris scale", "scale", e.SetIrisScale(e.IrisScale()+irisStep))
	case hal.KeyLeft:
		a.log.Debug("iris scale", "scale", e.SetIrisScale(e.IrisScale()-irisStep))
	case hal.KeyTab:
		next := (e.CurrentEye() + 1) % e.EyeCount()
		if err := e.SetCurrentEye(next); err != nil {
			return err
		}
		a.log.Debug("current eye", "eye", next)
	case hal.KeyEnter:
		e.Begin()
	case hal.KeyF1:
		a.showOverlay = !a.showOverlay
	case hal.KeyUnknown:
		return a.handleRune(ev.Rune)
	}
	return nil
}

func (a *App) handleRune(r rune) error {
	e := a.engine
	switch r {
	case 'q':
		return hal.ErrQuit
	case 'o':
		a.showOverlay = !a.showOverlay
	case '+', '=':
		if err := e.SetScale(e.Scale() * scaleStep); err != nil {
			return err
		}
		a.log.Debug("scale", "scale", e.Scale())
	case '-':
		if err := e.SetScale(e.Scale() / scaleStep); err != nil {
			return err
		}
		a.log.Debug("scale", "scale", e.Scale())
	case '0':
		e.FitScale()
		a.log.Debug("scale", "scale", e.Scale())
	}
	return nil
}

func (a *App) present() error {
	if a.disp == nil {
		return nil
	}
	if !a.showOverlay {
		var err error
		a.engine.ReadScaled(func(buf []uint16, w, h int) {
			err = display.Push(a.disp, buf, w, h)
		})
		return err
	}

	var err error
	a.engine.ReadScaled(func(buf []uint16, w, h int) {
		err = a.disp.DrawRGBBitmap(0, 0, buf, int16(w), int16(h))
	})
	if err != nil {
		return err
	}
	a.overlay.Draw(a.disp, a.status()...)
	return a.disp.Display()
}

func (a *App) status() []string {
	e := a.engine
	s := e.Stats()
	return []string{
		fmt.Sprintf("gap %d iris %d", e.EyelidGap(), e.IrisScale()),
		fmt.Sprintf("eye %d/%d fps %d", e.CurrentEye()+1, e.EyeCount(), s.FPS),
	}
}
