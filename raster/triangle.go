package raster

import "math"

// FillTriangle fills the triangle p0 p1 p2 with scanlines.
//
// Vertices are ordered by descending Y. A triangle with one horizontal edge
// is swept row by row from its apex to that edge; any other triangle is split
// at the middle vertex's row into two such halves that share the split row.
// Edge X positions advance by adding the inverse slope once per row. A
// triangle whose vertices all share one row is drawn as a horizontal line.
func FillTriangle(t Target, p0, p1, p2 Point, c Color) {
	top, mid, bot := sortDescY(p0, p1, p2)

	switch {
	case top.Y == bot.Y:
		lo := min(top.X, mid.X, bot.X)
		hi := max(top.X, mid.X, bot.X)
		drawSpan(t, top.Y, lo, hi, c)

	case top.Y == mid.Y:
		// Flat edge at the larger Y, apex at the smallest.
		fillFlat(t, bot, float64(top.X), float64(mid.X), top.Y, c)

	case mid.Y == bot.Y:
		// Flat edge at the smaller Y, apex at the largest.
		fillFlat(t, top, float64(mid.X), float64(bot.X), mid.Y, c)

	default:
		// Point on the long edge (bot -> top) level with mid.
		splitX := float64(bot.X) +
			float64(mid.Y-bot.Y)/float64(top.Y-bot.Y)*float64(top.X-bot.X)
		fillFlat(t, bot, float64(mid.X), splitX, mid.Y, c)
		fillFlat(t, top, float64(mid.X), splitX, mid.Y, c)
	}
}

// fillFlat fills the triangle with the given apex and a horizontal base on
// row baseY spanning columns bx0..bx1. baseY must differ from apex.Y. Rows
// outside the target are skipped without walking them.
func fillFlat(t Target, apex Point, bx0, bx1 float64, baseY int, c Color) {
	step := 1
	rows := baseY - apex.Y
	if rows < 0 {
		step = -1
		rows = -rows
	}
	inv0 := (bx0 - float64(apex.X)) / float64(rows)
	inv1 := (bx1 - float64(apex.X)) / float64(rows)

	// Row i lies at apex.Y + step*i.
	h := t.Height()
	first, last := 0, rows
	if step > 0 {
		first = max(first, -apex.Y)
		last = min(last, h-1-apex.Y)
	} else {
		first = max(first, apex.Y-(h-1))
		last = min(last, apex.Y)
	}
	if first > last {
		return
	}

	cur0 := float64(apex.X) + inv0*float64(first)
	cur1 := float64(apex.X) + inv1*float64(first)
	y := apex.Y + step*first
	for i := first; i <= last; i++ {
		drawSpan(t, y, roundInt(cur0), roundInt(cur1), c)
		cur0 += inv0
		cur1 += inv1
		y += step
	}
}

// DrawTriangle draws the outline of p0 p1 p2.
func DrawTriangle(t Target, p0, p1, p2 Point, c Color) {
	DrawLine(t, p0.X, p0.Y, p1.X, p1.Y, c)
	DrawLine(t, p1.X, p1.Y, p2.X, p2.Y, c)
	DrawLine(t, p2.X, p2.Y, p0.X, p0.Y, c)
}

// sortDescY orders three points by descending Y. Ties keep argument order.
func sortDescY(a, b, c Point) (Point, Point, Point) {
	if b.Y > a.Y {
		a, b = b, a
	}
	if c.Y > b.Y {
		b, c = c, b
		if b.Y > a.Y {
			a, b = b, a
		}
	}
	return a, b, c
}

// roundInt rounds half up, so results are stable under integer translation.
func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
