package raster

import "tinygo.org/x/tinyfont"

// Font is the default font for DrawText: TomThumb, a 3x5 bitmap face with a
// 6-row line advance.
var Font tinyfont.Fonter = &tinyfont.TomThumb

// DrawText writes s with its top-left corner at (x, y) using Font.
func DrawText(t Target, x, y int, s string, c Color) {
	DrawTextFont(t, Font, x, y, s, c)
}

// DrawTextFont writes s with f. tinyfont positions glyphs on their baseline,
// so the line is shifted down by the font's advance. Text that cannot reach
// the target, or whose coordinates do not fit tinyfont's int16 space, is
// dropped.
func DrawTextFont(t Target, f tinyfont.Fonter, x, y int, s string, c Color) {
	if f == nil || s == "" {
		return
	}
	lineH := int(f.GetYAdvance())
	w := TextWidth(f, s)
	// Glyph offsets may reach past the advance box by up to a line height.
	if x+w+lineH < 0 || x-lineH >= t.Width() || y+2*lineH < 0 || y-lineH >= t.Height() {
		return
	}
	baseline := y + lineH - 1
	if !fitsInt16(x-lineH) || !fitsInt16(x+w+lineH) || !fitsInt16(baseline-lineH) || !fitsInt16(baseline+lineH) {
		return
	}
	d := NewDisplayer(t)
	tinyfont.WriteLine(d, f, int16(x), int16(baseline), s, c.Opaque())
}

// TextWidth returns the advance of s in cells when drawn with f.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, w := tinyfont.LineWidth(f, s)
	return int(w)
}
