package raster

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Target to tinygo.org/x/drivers.Displayer so tinyfont
// and tinyterm can render into it.
type Displayer struct {
	t Target
}

// NewDisplayer wraps t.
func NewDisplayer(t Target) *Displayer {
	return &Displayer{t: t}
}

var _ drivers.Displayer = (*Displayer)(nil)

// Size reports the target size, clamped to what int16 coordinates reach.
func (d *Displayer) Size() (x, y int16) {
	if d.t == nil {
		return 0, 0
	}
	return clamp16(d.t.Width()), clamp16(d.t.Height())
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if d.t == nil {
		return
	}
	d.t.Set(int(x), int(y), Color{c.R, c.G, c.B})
}

// Display is a no-op: the wrapped target is presented by its owner.
func (d *Displayer) Display() error { return nil }

// FillRectangle fills width x height cells starting at (x, y).
func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.t == nil || width <= 0 || height <= 0 {
		return nil
	}
	FillRectangle(d.t, int(x), int(y), int(width)-1, int(height)-1, Color{c.R, c.G, c.B})
	return nil
}

// ScrollUp shifts the content up by lines rows and clears the exposed rows
// to bg. Targets other than *Buffer are cleared entirely.
func (d *Displayer) ScrollUp(lines int16, bg color.RGBA) error {
	if d.t == nil || lines <= 0 {
		return nil
	}
	c := Color{bg.R, bg.G, bg.B}
	if b, ok := d.t.(*Buffer); ok {
		b.scrollUp(int(lines), c)
		return nil
	}
	FillRectangle(d.t, 0, 0, d.t.Width()-1, d.t.Height()-1, c)
	return nil
}

// SetScroll is a no-op: there is no hardware scroll register, so terminals
// must use software scroll (ScrollUp).
func (d *Displayer) SetScroll(int16) {}

// SetRotation is a no-op; targets are always drawn unrotated.
func (d *Displayer) SetRotation(drivers.Rotation) error { return nil }

func clamp16(v int) int16 {
	return int16(min(max(v, 0), math.MaxInt16))
}

func fitsInt16(v int) bool {
	return v >= math.MinInt16 && v <= math.MaxInt16
}

// scrollUp moves rows [n, height) to [0, height-n) and fills the rest with bg.
func (b *Buffer) scrollUp(n int, bg Color) {
	if n >= b.height {
		b.Clear(bg)
		return
	}
	copy(b.pix, b.pix[n*b.width:])
	tail := b.pix[(b.height-n)*b.width:]
	for i := range tail {
		tail[i] = bg
	}
}
