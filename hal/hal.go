// Package hal is the only contact point between the frame loop and the
// outside world: windows, panels, framebuffers and image files.
//
// A Surface presents finished frames and feeds raw input on every poll.
// Runners own the cadence: they create a Loop for a surface, deliver the
// ready and destroyed notifications, and call Step once per frame.
package hal

import (
	"errors"
	"time"

	"pixelframe/input"
	"pixelframe/raster"
)

var ErrNilSurface = errors.New("hal: nil surface")

// Surface is a display target that also supplies raw input.
//
// All methods are called from the goroutine running the loop.
type Surface interface {
	// Poll writes the current level-triggered input into raw.
	Poll(raw *input.Raw)
	// Present shows v as the visible frame. v is only valid during the call.
	Present(v raster.View) error
	// SetTitle updates the surface caption, if it has one.
	SetTitle(title string)
}

// Loop is the frame loop a runner drives.
type Loop interface {
	// SurfaceReady is called once before the first Step. An error aborts
	// the runner before any frame runs.
	SurfaceReady() error
	// SurfaceDestroyed is called when the surface goes away.
	SurfaceDestroyed()
	// Running reports whether further Steps are wanted.
	Running() bool
	// Step runs one frame.
	Step(now time.Time) error
}

// NewLoop builds the loop for a surface.
type NewLoop func(s Surface) (Loop, error)
