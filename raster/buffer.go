package raster

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by strict reads outside the buffer.
var ErrOutOfRange = errors.New("raster: coordinate out of range")

// Target is a minimal pixel target for the rasterizer.
//
// Implementations must drop out-of-bounds writes.
type Target interface {
	Width() int
	Height() int
	Set(x, y int, c Color)
}

// Buffer is a fixed-size grid of color cells stored row-major.
//
// Create it once and reuse it; the size never changes.
type Buffer struct {
	width  int
	height int
	pix    []Color
}

// NewBuffer allocates a width x height buffer cleared to black.
// Non-positive dimensions produce an empty buffer that ignores all writes.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Contains reports whether (x, y) addresses a cell.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes c at (x, y). Out-of-range writes are ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.Contains(x, y) {
		return
	}
	b.pix[y*b.width+x] = c
}

// Get returns the color at (x, y), or the zero color when out of range.
func (b *Buffer) Get(x, y int) Color {
	if !b.Contains(x, y) {
		return Color{}
	}
	return b.pix[y*b.width+x]
}

// Lookup is the strict form of Get.
func (b *Buffer) Lookup(x, y int) (Color, error) {
	if !b.Contains(x, y) {
		return Color{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, b.width, b.height)
	}
	return b.pix[y*b.width+x], nil
}

// Clear fills every cell with c.
func (b *Buffer) Clear(c Color) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = c
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// fillSpan writes c into row y for columns [x0, x1], already clipped.
func (b *Buffer) fillSpan(y, x0, x1 int, c Color) {
	row := b.pix[y*b.width : (y+1)*b.width]
	for x := x0; x <= x1; x++ {
		row[x] = c
	}
}

// View returns a read-only view of the buffer.
func (b *Buffer) View() View { return View{b: b} }
