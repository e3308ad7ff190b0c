package raster

import (
	"image"
	"image/color"
)

// View is a read-only window onto a Buffer, handed to presentation.
//
// View implements image.Image so frames can be encoded or scaled with the
// standard image packages.
type View struct {
	b *Buffer
}

func (v View) Width() int {
	if v.b == nil {
		return 0
	}
	return v.b.width
}

func (v View) Height() int {
	if v.b == nil {
		return 0
	}
	return v.b.height
}

// Get returns the cell at (x, y), or the zero color when out of range.
func (v View) Get(x, y int) Color {
	if v.b == nil {
		return Color{}
	}
	return v.b.Get(x, y)
}

func (v View) ColorModel() color.Model { return Model }

func (v View) Bounds() image.Rectangle { return image.Rect(0, 0, v.Width(), v.Height()) }

func (v View) At(x, y int) color.Color { return v.Get(x, y) }

// CopyRGBA writes the frame as 8-bit RGBA (alpha 0xFF) into dst and returns
// the number of cells copied. dst is filled row by row until either side
// runs out.
func (v View) CopyRGBA(dst []byte) int {
	if v.b == nil {
		return 0
	}
	n := 0
	for i, c := range v.b.pix {
		j := i * 4
		if j+3 >= len(dst) {
			break
		}
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
		n++
	}
	return n
}

// RGBA returns a copy of the frame as an *image.RGBA.
func (v View) RGBA() *image.RGBA {
	img := image.NewRGBA(v.Bounds())
	v.CopyRGBA(img.Pix)
	return img
}
