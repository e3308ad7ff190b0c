// Package engine runs the frame loop: poll input, scan it into edges, let
// the App draw into the pixel buffer, present the result.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pixelframe/hal"
	"pixelframe/input"
	"pixelframe/internal/logging"
	"pixelframe/raster"
)

var (
	ErrInvalidSize = errors.New("engine: invalid buffer size")
	ErrNilApp      = errors.New("engine: nil app")
	ErrNilSurface  = errors.New("engine: nil surface")

	// ErrStop is returned from App.OnUpdate to end the loop normally.
	ErrStop = errors.New("engine: stop")
)

// Config describes the buffer and loop behavior.
type Config struct {
	// Name prefixes the frame rate title, "Name @FPS: N".
	Name          string
	Width, Height int
	// AutoClear clears the buffer to ClearColor before every OnUpdate.
	AutoClear  bool
	ClearColor raster.Color
	// QuitKey stops the loop on its pressed edge. KeyNone means Escape
	// unless NoQuitKey is set.
	QuitKey   input.Key
	NoQuitKey bool
}

// Stats are loop counters.
type Stats struct {
	Frames        uint64
	PresentErrors uint64
	FPS           int
}

// Controller owns the pixel buffer and the input state and runs one frame
// per Step. It implements hal.Loop.
type Controller struct {
	app  App
	surf hal.Surface
	cfg  Config

	buf   *raster.Buffer
	in    input.State
	fps   fpsMeter
	frame Frame

	created   bool
	createErr error
	running   bool
	stats     Stats

	log *slog.Logger
}

var _ hal.Loop = (*Controller)(nil)

// New allocates the buffer and binds app to surf. The loop does not run
// until SurfaceReady.
func New(app App, surf hal.Surface, cfg Config) (*Controller, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if app == nil {
		return nil, ErrNilApp
	}
	if surf == nil {
		return nil, ErrNilSurface
	}
	if cfg.QuitKey == input.KeyNone && !cfg.NoQuitKey {
		cfg.QuitKey = input.KeyEscape
	}

	c := &Controller{
		app:  app,
		surf: surf,
		cfg:  cfg,
		buf:  raster.NewBuffer(cfg.Width, cfg.Height),
		log:  logging.Logger().With("app", cfg.Name),
	}
	c.buf.Clear(cfg.ClearColor)
	c.frame = Frame{Buffer: c.buf, Input: &c.in, c: c}
	return c, nil
}

// Loop returns a hal.NewLoop that builds a Controller for each surface.
func Loop(app App, cfg Config) hal.NewLoop {
	return func(s hal.Surface) (hal.Loop, error) {
		return New(app, s, cfg)
	}
}

// SurfaceReady runs OnCreate the first time it is called and starts the
// loop. An OnCreate error leaves the loop stopped and is returned again by
// every later call.
func (c *Controller) SurfaceReady() error {
	if c.created {
		if c.createErr != nil {
			return c.createErr
		}
		c.running = true
		return nil
	}
	c.created = true
	if err := c.app.OnCreate(&c.frame); err != nil {
		c.createErr = fmt.Errorf("engine: create: %w", err)
		return c.createErr
	}
	c.running = true
	c.log.Info("engine: surface ready", "width", c.cfg.Width, "height", c.cfg.Height)
	return nil
}

// SurfaceDestroyed stops the loop.
func (c *Controller) SurfaceDestroyed() {
	if c.running {
		c.log.Info("engine: surface destroyed", "frames", c.stats.Frames)
	}
	c.running = false
}

// Running reports whether the loop wants more frames.
func (c *Controller) Running() bool { return c.running }

// Stop ends the loop. A frame in progress still completes and is presented.
func (c *Controller) Stop() { c.running = false }

// Buffer returns the pixel buffer.
func (c *Controller) Buffer() *raster.Buffer { return c.buf }

// Input returns the scanned input state.
func (c *Controller) Input() *input.State { return &c.in }

// Stats returns the loop counters.
func (c *Controller) Stats() Stats { return c.stats }

// Step runs one frame: frame rate report, poll, scan, quit key check,
// optional clear, OnUpdate, present. It does nothing when the loop is not
// running. A present failure is logged and counted; the frame still
// counts.
func (c *Controller) Step(now time.Time) error {
	if !c.running {
		return nil
	}

	dt := c.fps.sample(now)
	if fps, ok := c.fps.report(dt); ok {
		c.stats.FPS = fps
		c.surf.SetTitle(fmt.Sprintf("%s @FPS: %d", c.cfg.Name, fps))
		c.log.Debug("engine: fps", "fps", fps, "frame", c.stats.Frames)
	}

	c.surf.Poll(c.in.Raw())
	c.in.Scan()
	if !c.cfg.NoQuitKey && c.in.Key(c.cfg.QuitKey).Pressed {
		c.log.Info("engine: quit key", "key", c.cfg.QuitKey)
		c.running = false
	}

	if c.cfg.AutoClear {
		c.buf.Clear(c.cfg.ClearColor)
	}

	c.frame.Delta = dt
	c.frame.Number = c.stats.Frames
	if err := c.app.OnUpdate(&c.frame); err != nil {
		if !errors.Is(err, ErrStop) {
			c.running = false
			return fmt.Errorf("engine: frame %d: %w", c.stats.Frames, err)
		}
		c.running = false
	}

	if err := c.surf.Present(c.buf.View()); err != nil {
		c.stats.PresentErrors++
		c.log.Warn("engine: present failed", "frame", c.stats.Frames, "err", err)
	}
	c.stats.Frames++
	return nil
}
