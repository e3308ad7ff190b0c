package raster

// DrawCircle draws a circle outline using the midpoint algorithm.
func DrawCircle(t Target, cx, cy, radius int, c Color) {
	if radius < 0 {
		return
	}
	x := radius
	y := 0
	err := 0

	for x >= y {
		// One cell per octant.
		t.Set(cx+x, cy+y, c)
		t.Set(cx+y, cy+x, c)
		t.Set(cx-y, cy+x, c)
		t.Set(cx-x, cy+y, c)
		t.Set(cx-x, cy-y, c)
		t.Set(cx-y, cy-x, c)
		t.Set(cx+y, cy-x, c)
		t.Set(cx+x, cy-y, c)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}

// FillCircle fills every cell whose offset (dx, dy) from the center satisfies
// dx*dx + dy*dy <= radius*radius.
func FillCircle(t Target, cx, cy, radius int, c Color) {
	if radius < 0 {
		return
	}
	r2 := radius * radius
	half := radius
	for dy := -radius; dy <= radius; dy++ {
		for half*half > r2-dy*dy {
			half--
		}
		for (half+1)*(half+1) <= r2-dy*dy {
			half++
		}
		drawSpan(t, cy+dy, cx-half, cx+half, c)
	}
}
