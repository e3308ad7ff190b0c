package hal

import "errors"

// ErrNoWindow is returned by RunWindow in builds without a window backend.
var ErrNoWindow = errors.New("hal: window mode requires cgo (build/run with CGO_ENABLED=1)")

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	// Width and Height are the buffer size in cells.
	Width, Height int
	// Scale is the number of screen pixels per cell.
	Scale int
	// TPS is the fixed update rate.
	TPS        int
	Fullscreen bool
	Title      string
	// Wrap, if set, decorates the window surface before the loop sees it.
	Wrap func(Surface) Surface
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}
