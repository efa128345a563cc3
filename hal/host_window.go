//go:build !tinygo && cgo

package hal

import (
	"errors"

	"eyes/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	Size Size
	Zoom int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard input. It blocks until the window closes or a step returns ErrQuit.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Zoom <= 0 {
		cfg.Zoom = 2
	}
	h := New(cfg.Size).(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("eyes (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Zoom, h.fb.height*cfg.Zoom)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	pix   []byte
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.pix = make([]byte, fb.width*fb.height*4)
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	fb.snapshotRGBA(g.pix)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
