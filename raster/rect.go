package raster

// FillRectangle fills every cell in [x, x+w] × [y, y+h].
//
// Both bounds are inclusive, so a w×h request covers w+1 columns and h+1
// rows. Negative extents fill nothing.
func FillRectangle(t Target, x, y, w, h int, c Color) {
	if w < 0 || h < 0 {
		return
	}
	y0, y1 := y, y+h
	if y0 < 0 {
		y0 = 0
	}
	if th := t.Height(); y1 >= th {
		y1 = th - 1
	}
	for row := y0; row <= y1; row++ {
		drawSpan(t, row, x, x+w, c)
	}
}

// FillRectangleAt is FillRectangle anchored at a Point.
func FillRectangleAt(t Target, p Point, w, h int, c Color) {
	FillRectangle(t, p.X, p.Y, w, h, c)
}

// DrawRect draws the outline of the same cells FillRectangle would fill.
func DrawRect(t Target, x, y, w, h int, c Color) {
	if w < 0 || h < 0 {
		return
	}
	drawSpan(t, y, x, x+w, c)
	drawSpan(t, y+h, x, x+w, c)
	drawColumn(t, x, y, y+h, c)
	drawColumn(t, x+w, y, y+h, c)
}
