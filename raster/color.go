package raster

import "image/color"

// Color is an RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Predefined colors.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Orange  = Color{255, 165, 0}
	Purple  = Color{128, 0, 128}
	Gray    = Color{128, 128, 128}
)

// RGB creates a color from red, green, blue components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Hex creates a color from a hex value (0xRRGGBB).
func Hex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// RGBA implements color.Color. Cells are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// NRGBA converts c to the standard library's opaque NRGBA form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Opaque returns c in the color.RGBA form tinygo drivers and tinyfont
// expect.
func (c Color) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// fromColor converts any color.Color, dropping alpha.
func fromColor(c color.Color) Color {
	if rc, ok := c.(Color); ok {
		return rc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// Model converts arbitrary colors into Color values.
var Model = color.ModelFunc(func(c color.Color) color.Color { return fromColor(c) })
