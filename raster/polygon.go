package raster

import (
	"math"
	"slices"
)

// FillQuad fills the convex quadrilateral with corners v0..v3.
//
// The corners may be given in any order: the fill covers their convex hull,
// scan converted row by row. Rotated and sheared quads are filled exactly,
// not by their bounding box.
func FillQuad(t Target, v0, v1, v2, v3 Point, c Color) {
	FillPolygon(t, []Point{v0, v1, v2, v3}, c)
}

// FillPolygon fills the convex hull of pts.
//
// Each row between the hull's lowest and highest Y is intersected with every
// hull edge and the span between the leftmost and rightmost crossing is
// drawn. Degenerate hulls fall back to a point or a line.
func FillPolygon(t Target, pts []Point, c Color) {
	hull := convexHull(pts)
	switch len(hull) {
	case 0:
		return
	case 1:
		t.Set(hull[0].X, hull[0].Y, c)
		return
	case 2:
		DrawLine(t, hull[0].X, hull[0].Y, hull[1].X, hull[1].Y, c)
		return
	}

	minY, maxY := hull[0].Y, hull[0].Y
	for _, p := range hull[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, t.Height()-1)

	for y := minY; y <= maxY; y++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for i, a := range hull {
			b := hull[(i+1)%len(hull)]
			if a.Y == b.Y {
				if a.Y == y {
					lo = math.Min(lo, float64(min(a.X, b.X)))
					hi = math.Max(hi, float64(max(a.X, b.X)))
				}
				continue
			}
			if y < min(a.Y, b.Y) || y > max(a.Y, b.Y) {
				continue
			}
			x := float64(a.X) + float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		if lo <= hi {
			drawSpan(t, y, roundInt(lo), roundInt(hi), c)
		}
	}
}

// convexHull returns the hull of pts in counter-clockwise order (Andrew's
// monotone chain). Collinear and duplicate points are dropped.
func convexHull(pts []Point) []Point {
	ps := slices.Clone(pts)
	slices.SortFunc(ps, func(a, b Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	ps = slices.Compact(ps)
	if len(ps) < 3 {
		return ps
	}

	hull := make([]Point, 0, 2*len(ps))
	for _, p := range ps {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(ps) - 2; i >= 0; i-- {
		p := ps[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func cross(o, a, b Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
