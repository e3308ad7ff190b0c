package engine

import (
	"time"

	"pixelframe/input"
	"pixelframe/raster"
)

// App is the user extension point. Both methods run on the loop goroutine.
type App interface {
	// OnCreate runs once after the surface is ready, before the first
	// frame. An error aborts the loop before it starts.
	OnCreate(f *Frame) error
	// OnUpdate runs once per frame, after input is scanned and before the
	// buffer is presented. Returning ErrStop ends the loop after this
	// frame is presented.
	OnUpdate(f *Frame) error
}

// Funcs adapts plain functions to App. Nil fields are no-ops.
type Funcs struct {
	Create func(f *Frame) error
	Update func(f *Frame) error
}

func (fn Funcs) OnCreate(f *Frame) error {
	if fn.Create == nil {
		return nil
	}
	return fn.Create(f)
}

func (fn Funcs) OnUpdate(f *Frame) error {
	if fn.Update == nil {
		return nil
	}
	return fn.Update(f)
}

// Frame is what an App sees during one callback.
type Frame struct {
	// Buffer is owned by the controller; do not keep it past the callback.
	Buffer *raster.Buffer
	Input  *input.State
	// Delta is the wall-clock time since the previous frame.
	Delta time.Duration
	// Number counts frames from zero.
	Number uint64

	c *Controller
}

// Key returns the state of k for this frame.
func (f *Frame) Key(k input.Key) input.ButtonState { return f.Input.Key(k) }

// Mouse returns the state of b for this frame.
func (f *Frame) Mouse(b input.MouseButton) input.ButtonState { return f.Input.Mouse(b) }

// Cursor returns the cursor position in cells.
func (f *Frame) Cursor() (x, y int) { return f.Input.Cursor() }

// Stop ends the loop once the current frame has been presented.
func (f *Frame) Stop() {
	if f.c != nil {
		f.c.Stop()
	}
}
