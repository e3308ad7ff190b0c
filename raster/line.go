package raster

// DrawPoint sets a single cell.
func DrawPoint(t Target, x, y int, c Color) {
	t.Set(x, y, c)
}

// DrawLine draws a connected line from (x0, y0) to (x1, y1) inclusive.
//
// The line is walked along X from the left endpoint. Each column plots the
// ideal row rounded to the nearest cell; when the row jumps by more than one
// between columns, the rows in between are filled in the new column so steep
// segments stay gapless. Vertical and zero-length segments are plotted as a
// straight run.
func DrawLine(t Target, x0, y0, x1, y1 int, c Color) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		drawColumn(t, x0, y0, y1, c)
		return
	}

	startX, startY, endX, endY := x0, y0, x1, y1
	if x1 < x0 {
		startX, startY, endX, endY = x1, y1, x0, y0
	}

	a := float64(endY-startY) / float64(endX-startX)
	ideal := func(x int) int {
		return roundInt(float64(startY) + a*float64(x-startX))
	}

	// Columns left of -1 and right of width are never visible; skip them
	// without changing what lands inside the target.
	first := startX
	if first < -1 {
		first = -1
	}
	last := endX
	if w := t.Width(); last > w {
		last = w
	}

	prev := ideal(first)
	t.Set(first, prev, c)
	for x := first + 1; x <= last; x++ {
		row := ideal(x)
		switch {
		case row-prev > 1:
			drawColumn(t, x, prev+1, row-1, c)
		case prev-row > 1:
			drawColumn(t, x, row+1, prev-1, c)
		}
		t.Set(x, row, c)
		prev = row
	}
}

// drawColumn plots rows [y0, y1] of column x, clipped to the target.
func drawColumn(t Target, x, y0, y1 int, c Color) {
	if x < 0 || x >= t.Width() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if h := t.Height(); y1 >= h {
		y1 = h - 1
	}
	for y := y0; y <= y1; y++ {
		t.Set(x, y, c)
	}
}

// drawSpan plots columns [x0, x1] of row y, clipped to the target.
func drawSpan(t Target, y, x0, x1 int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < 0 || y >= t.Height() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if w := t.Width(); x1 >= w {
		x1 = w - 1
	}
	if x0 > x1 {
		return
	}
	if b, ok := t.(*Buffer); ok {
		b.fillSpan(y, x0, x1, c)
		return
	}
	for x := x0; x <= x1; x++ {
		t.Set(x, y, c)
	}
}
