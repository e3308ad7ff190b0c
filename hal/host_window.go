//go:build cgo

package hal

import (
	"errors"
	"fmt"
	"time"

	"pixelframe/input"
	"pixelframe/internal/logging"
	"pixelframe/raster"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that shows the presented frames and
// forwards keyboard and mouse input. It blocks until the loop stops or the
// window closes.
func RunWindow(cfg WindowConfig, newLoop NewLoop) error {
	cfg = cfg.withDefaults()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("hal: window: invalid size %dx%d", cfg.Width, cfg.Height)
	}

	ws := &windowSurface{
		width:  cfg.Width,
		height: cfg.Height,
		pix:    make([]byte, cfg.Width*cfg.Height*4),
	}
	var s Surface = ws
	if cfg.Wrap != nil {
		s = cfg.Wrap(ws)
	}
	loop, err := newLoop(s)
	if err != nil {
		return fmt.Errorf("hal: window: %w", err)
	}

	g := &windowGame{s: ws, loop: loop}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	logging.Logger().Info("hal: window open",
		"width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale, "tps", cfg.TPS)

	err = ebiten.RunGame(g)
	if !g.destroyed {
		loop.SurfaceDestroyed()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type windowSurface struct {
	width, height int
	pix           []byte
	dirty         bool
}

func (s *windowSurface) Poll(raw *input.Raw) { pollEbiten(raw) }

func (s *windowSurface) Present(v raster.View) error {
	v.CopyRGBA(s.pix)
	s.dirty = true
	return nil
}

func (s *windowSurface) SetTitle(title string) { ebiten.SetWindowTitle(title) }

type windowGame struct {
	s         *windowSurface
	loop      Loop
	img       *ebiten.Image
	started   bool
	destroyed bool
}

func (g *windowGame) Update() error {
	if !g.started {
		g.started = true
		if err := g.loop.SurfaceReady(); err != nil {
			return fmt.Errorf("hal: window: %w", err)
		}
	}
	if ebiten.IsWindowBeingClosed() && !g.destroyed {
		g.destroyed = true
		g.loop.SurfaceDestroyed()
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}
	return g.loop.Step(time.Now())
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.s.width, g.s.height)
	}
	if g.s.dirty {
		g.img.WritePixels(g.s.pix)
		g.s.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.width, g.s.height
}
