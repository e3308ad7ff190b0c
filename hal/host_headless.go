package hal

import (
	"context"
	"fmt"
	"time"

	"pixelframe/internal/logging"
)

// HeadlessConfig controls the ticker-driven runner.
type HeadlessConfig struct {
	// Hz is the frame rate. Zero means 60.
	Hz int
	// Frames stops the runner after that many frames. Zero runs until the
	// loop stops or the context is done.
	Frames uint64
	// Script is raw input applied at given frames.
	Script []ScriptEvent
}

// RunHeadless drives the loop from a ticker without opening a window.
func RunHeadless(ctx context.Context, s Surface, cfg HeadlessConfig, newLoop NewLoop) error {
	if s == nil {
		return ErrNilSurface
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("hal: invalid headless hz: %d", cfg.Hz)
	}
	if len(cfg.Script) > 0 {
		s = NewScriptSurface(s, cfg.Script)
	}

	loop, err := newLoop(s)
	if err != nil {
		return fmt.Errorf("hal: headless: %w", err)
	}
	if err := loop.SurfaceReady(); err != nil {
		return fmt.Errorf("hal: headless: %w", err)
	}
	defer loop.SurfaceDestroyed()

	logging.Logger().Info("hal: headless start", "hz", cfg.Hz, "frames", cfg.Frames)

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for loop.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if err := loop.Step(now); err != nil {
				return err
			}
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
	return nil
}
