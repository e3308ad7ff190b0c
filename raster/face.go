package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GoRegular returns the Go Regular TrueType face at size pixels per em.
func GoRegular(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse go regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("raster: go regular face: %w", err)
	}
	return face, nil
}

// DrawFace writes s with an x/image font face, baseline at y. Glyph
// coverage of 50% or more plots a cell; there is no blending.
func DrawFace(t Target, face font.Face, x, y int, s string, c Color) {
	if face == nil || s == "" {
		return
	}
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	w := font.MeasureString(face, s).Ceil()
	h := ascent + m.Descent.Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(s)

	for py := 0; py < h; py++ {
		row := mask.Pix[py*mask.Stride : py*mask.Stride+w]
		for px, a := range row {
			if a >= 0x80 {
				t.Set(x+px, y-ascent+py, c)
			}
		}
	}
}

// FaceWidth returns the advance of s in cells when drawn with face.
func FaceWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
