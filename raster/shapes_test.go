package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestFillRectangleInclusive(t *testing.T) {
	b := NewBuffer(10, 10)
	FillRectangle(b, 2, 3, 4, 2, Red)

	got := painted(b, Red)
	if len(got) != 5*3 {
		t.Fatalf("FillRectangle(2,3,4,2) painted %d cells, want 15", len(got))
	}
	for y := 3; y <= 5; y++ {
		for x := 2; x <= 6; x++ {
			if !got[Pt(x, y)] {
				t.Fatalf("cell (%d,%d) not painted", x, y)
			}
		}
	}
}

func TestFillRectangleClipsAndRejects(t *testing.T) {
	b := NewBuffer(4, 4)
	FillRectangle(b, -2, -2, 3, 3, Red)
	if got := len(painted(b, Red)); got != 4 {
		t.Fatalf("clipped FillRectangle painted %d cells, want 4", got)
	}

	b.Clear(Black)
	FillRectangle(b, 1, 1, -1, 2, Red)
	FillRectangle(b, 1, 1, 2, -1, Red)
	if got := len(painted(b, Red)); got != 0 {
		t.Fatalf("negative extent painted %d cells, want 0", got)
	}

	FillRectangle(b, 1, 1, 0, 0, Red)
	if got := painted(b, Red); len(got) != 1 || !got[Pt(1, 1)] {
		t.Fatalf("zero extent painted %v, want (1,1)", got)
	}
}

func TestDrawRectOutline(t *testing.T) {
	b := NewBuffer(8, 8)
	DrawRect(b, 1, 1, 4, 3, Blue)

	got := painted(b, Blue)
	if len(got) != 2*5+2*2 {
		t.Fatalf("DrawRect painted %d cells, want 14", len(got))
	}
	if got[Pt(2, 2)] {
		t.Fatalf("DrawRect filled interior cell (2,2)")
	}
}

func TestFillTriangle(t *testing.T) {
	b := NewBuffer(8, 8)
	FillTriangle(b, Pt(0, 0), Pt(4, 0), Pt(2, 4), White)

	got := painted(b, White)
	for p := range got {
		if p.X < 0 || p.X > 4 || p.Y < 0 || p.Y > 4 {
			t.Fatalf("cell %v outside bounding box", p)
		}
	}
	if !connected(got) {
		t.Fatalf("triangle is not connected: %v", got)
	}
	for y := 0; y <= 4; y++ {
		row := false
		for x := 0; x <= 4; x++ {
			row = row || got[Pt(x, y)]
		}
		if !row {
			t.Fatalf("row %d is empty", y)
		}
	}
	for _, p := range []Point{{0, 0}, {4, 0}, {2, 4}, {1, 1}, {2, 1}, {3, 1}, {2, 2}, {2, 3}} {
		if !got[p] {
			t.Fatalf("cell %v not painted", p)
		}
	}
}

func TestFillTriangleSplit(t *testing.T) {
	verts := []Point{{0, 0}, {6, 3}, {2, 8}}
	ref := NewBuffer(10, 10)
	FillTriangle(ref, verts[0], verts[1], verts[2], Green)

	got := painted(ref, Green)
	for _, v := range verts {
		if !got[v] {
			t.Fatalf("vertex %v not painted", v)
		}
	}
	if !connected(got) {
		t.Fatalf("triangle is not connected")
	}
	for y := 0; y <= 8; y++ {
		row := false
		for x := 0; x < 10; x++ {
			row = row || got[Pt(x, y)]
		}
		if !row {
			t.Fatalf("row %d is empty", y)
		}
	}

	perms := [][3]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		b := NewBuffer(10, 10)
		FillTriangle(b, verts[p[0]], verts[p[1]], verts[p[2]], Green)
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if b.Get(x, y) != ref.Get(x, y) {
					t.Fatalf("order %v: cell (%d,%d) differs", p, x, y)
				}
			}
		}
	}
}

func TestFillTriangleFlatTop(t *testing.T) {
	b := NewBuffer(8, 8)
	FillTriangle(b, Pt(0, 4), Pt(6, 4), Pt(3, 0), Red)

	got := painted(b, Red)
	for x := 0; x <= 6; x++ {
		if !got[Pt(x, 4)] {
			t.Fatalf("base cell (%d,4) not painted", x)
		}
	}
	if !got[Pt(3, 0)] {
		t.Fatalf("apex not painted")
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	b := NewBuffer(8, 8)
	FillTriangle(b, Pt(5, 2), Pt(1, 2), Pt(3, 2), Red)

	got := painted(b, Red)
	if len(got) != 5 {
		t.Fatalf("collinear triangle painted %d cells, want 5", len(got))
	}
	for x := 1; x <= 5; x++ {
		if !got[Pt(x, 2)] {
			t.Fatalf("cell (%d,2) not painted", x)
		}
	}

	b.Clear(Black)
	FillTriangle(b, Pt(3, 3), Pt(3, 3), Pt(3, 3), Red)
	if got := painted(b, Red); len(got) != 1 || !got[Pt(3, 3)] {
		t.Fatalf("point triangle painted %v, want (3,3)", got)
	}
}

func TestFillTriangleTallIsClipped(t *testing.T) {
	b := NewBuffer(8, 8)
	FillTriangle(b, Pt(0, -1<<40), Pt(4, 0), Pt(2, 1<<40), Red)

	got := painted(b, Red)
	for y := 0; y < 8; y++ {
		if !got[Pt(2, y)] {
			t.Fatalf("cell (2,%d) not painted", y)
		}
		if got[Pt(6, y)] {
			t.Fatalf("cell (6,%d) painted outside the triangle", y)
		}
	}
}

// A triangle hanging over the edges paints exactly the cells an unclipped
// rendering paints inside the target.
func TestFillTriangleClipping(t *testing.T) {
	const off = 50
	for _, tri := range [][3]Point{
		{Pt(4, -12), Pt(-8, 12), Pt(16, 12)},
		{Pt(4, 20), Pt(-8, -4), Pt(16, -4)},
		{Pt(-6, -10), Pt(14, 2), Pt(2, 18)},
	} {
		small := NewBuffer(10, 10)
		big := NewBuffer(110, 110)
		FillTriangle(small, tri[0], tri[1], tri[2], Red)
		o := Pt(off, off)
		FillTriangle(big, tri[0].Add(o), tri[1].Add(o), tri[2].Add(o), Red)

		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				want := big.Get(x+off, y+off) == Red
				if got := small.Get(x, y) == Red; got != want {
					t.Fatalf("FillTriangle(%v) cell (%d,%d) = %v, want %v", tri, x, y, got, want)
				}
			}
		}
	}
}

func TestFillQuadAxisAligned(t *testing.T) {
	want := NewBuffer(8, 8)
	FillRectangle(want, 0, 0, 4, 3, Red)

	orders := [][4]Point{
		{{0, 0}, {4, 0}, {4, 3}, {0, 3}},
		{{4, 3}, {0, 0}, {0, 3}, {4, 0}},
		{{0, 3}, {4, 3}, {4, 0}, {0, 0}},
	}
	for _, q := range orders {
		b := NewBuffer(8, 8)
		FillQuad(b, q[0], q[1], q[2], q[3], Red)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if b.Get(x, y) != want.Get(x, y) {
					t.Fatalf("FillQuad(%v) cell (%d,%d) = %v, want %v", q, x, y, b.Get(x, y), want.Get(x, y))
				}
			}
		}
	}
}

func TestFillQuadDiamond(t *testing.T) {
	b := NewBuffer(10, 10)
	FillQuad(b, Pt(4, 0), Pt(8, 4), Pt(4, 8), Pt(0, 4), Yellow)

	got := painted(b, Yellow)
	if len(got) != 41 {
		t.Fatalf("diamond painted %d cells, want 41", len(got))
	}
	// Corners of the bounding box stay empty.
	for _, p := range []Point{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		if got[p] {
			t.Fatalf("corner %v painted", p)
		}
	}
}

func TestFillQuadCollinear(t *testing.T) {
	b := NewBuffer(8, 8)
	FillQuad(b, Pt(0, 0), Pt(2, 2), Pt(4, 4), Pt(1, 1), Red)

	got := painted(b, Red)
	if len(got) != 5 {
		t.Fatalf("collinear quad painted %d cells, want 5", len(got))
	}
	for i := 0; i <= 4; i++ {
		if !got[Pt(i, i)] {
			t.Fatalf("cell (%d,%d) not painted", i, i)
		}
	}
}

func TestFillCircle(t *testing.T) {
	b := NewBuffer(11, 11)
	FillCircle(b, 5, 5, 3, Red)

	got := painted(b, Red)
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			dx, dy := x-5, y-5
			want := dx*dx+dy*dy <= 9
			if got[Pt(x, y)] != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got[Pt(x, y)], want)
			}
		}
	}
	if len(got) != 29 {
		t.Fatalf("FillCircle painted %d cells, want 29", len(got))
	}
}

func TestDrawCircle(t *testing.T) {
	b := NewBuffer(17, 17)
	DrawCircle(b, 8, 8, 5, Red)

	got := painted(b, Red)
	for _, p := range []Point{{13, 8}, {3, 8}, {8, 13}, {8, 3}} {
		if !got[p] {
			t.Fatalf("extreme %v not painted", p)
		}
	}
	for p := range got {
		dx, dy := p.X-8, p.Y-8
		d2 := dx*dx + dy*dy
		if d2 < 4*4 || d2 > 6*6 {
			t.Fatalf("cell %v is off the ring", p)
		}
	}

	b.Clear(Black)
	DrawCircle(b, 2, 2, 0, Red)
	if got := painted(b, Red); len(got) != 1 || !got[Pt(2, 2)] {
		t.Fatalf("zero radius painted %v, want center", got)
	}
}

func TestDrawImageMask(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 0x7f})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 0x80})

	b := NewBuffer(4, 4)
	DrawImage(b, img, 1, 1)

	for _, tc := range []struct {
		p    Point
		want Color
	}{
		{Pt(1, 1), Red},
		{Pt(2, 1), Black},
		{Pt(1, 2), Blue},
		{Pt(2, 2), Black},
	} {
		if got := b.Get(tc.p.X, tc.p.Y); got != tc.want {
			t.Fatalf("Get(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestDrawImageGenericPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(3, 3, 5, 4))
	img.SetRGBA(3, 3, color.RGBA{R: 64, A: 128})
	img.SetRGBA(4, 3, color.RGBA{G: 10, A: 10})

	b := NewBuffer(3, 3)
	DrawImage(b, img, -1, 0)
	DrawImage(b, img, 1, 2)

	if got := b.Get(1, 2); got != RGB(127, 0, 0) {
		t.Fatalf("Get(1,2) = %v, want un-premultiplied red", got)
	}
	if got := b.Get(2, 2); got != Black {
		t.Fatalf("Get(2,2) = %v, want transparent skip", got)
	}
	if got := b.Get(0, 0); got != Black {
		t.Fatalf("Get(0,0) = %v, want clipped source", got)
	}
}

func TestDrawText(t *testing.T) {
	b := NewBuffer(32, 16)
	DrawText(b, 1, 1, "Hi", White)

	got := painted(b, White)
	if len(got) == 0 {
		t.Fatalf("DrawText painted nothing")
	}
	h := int(Font.GetYAdvance())
	for p := range got {
		if p.X < 1 || p.Y < 1 || p.Y > h {
			t.Fatalf("glyph cell %v outside the text line", p)
		}
	}
	if w := TextWidth(Font, "Hi"); w <= 0 {
		t.Fatalf("TextWidth() = %d, want > 0", w)
	}
}

func TestDrawTextFarOffscreen(t *testing.T) {
	for _, p := range []Point{
		Pt(65536+2, 2),
		Pt(-65536+2, 2),
		Pt(2, 65536+2),
		Pt(2, -65536+2),
		Pt(40, 2),
		Pt(-40, 2),
	} {
		b := NewBuffer(32, 16)
		DrawText(b, p.X, p.Y, "HI", White)
		if got := len(painted(b, White)); got != 0 {
			t.Fatalf("DrawText(%v) painted %d cells, want 0", p, got)
		}
	}
}

func TestDisplayerSizeClamped(t *testing.T) {
	d := NewDisplayer(NewBuffer(40000, 1))
	if w, h := d.Size(); w != 32767 || h != 1 {
		t.Fatalf("Size() = %d,%d, want 32767,1", w, h)
	}
}

func TestDisplayer(t *testing.T) {
	b := NewBuffer(3, 4)
	d := NewDisplayer(b)

	if w, h := d.Size(); w != 3 || h != 4 {
		t.Fatalf("Size() = %d,%d, want 3,4", w, h)
	}
	if err := d.FillRectangle(0, 0, 2, 2, color.RGBA{R: 255, A: 255}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if got := len(painted(b, Red)); got != 4 {
		t.Fatalf("FillRectangle(2x2) painted %d cells, want 4", got)
	}

	b.Clear(Black)
	for x := 0; x < 3; x++ {
		b.Set(x, 1, Green)
	}
	if err := d.ScrollUp(1, color.RGBA{B: 255, A: 255}); err != nil {
		t.Fatalf("ScrollUp: %v", err)
	}
	for x := 0; x < 3; x++ {
		if got := b.Get(x, 0); got != Green {
			t.Fatalf("after ScrollUp Get(%d,0) = %v, want %v", x, got, Green)
		}
		if got := b.Get(x, 3); got != Blue {
			t.Fatalf("after ScrollUp Get(%d,3) = %v, want %v", x, got, Blue)
		}
	}
}
