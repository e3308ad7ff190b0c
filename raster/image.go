package raster

import "image"

// alphaCutoff is the 16-bit alpha at and above which a source pixel is drawn.
const alphaCutoff = 0x8000

// DrawImage copies img onto t with its top-left corner at (x, y).
//
// Alpha is treated as a mask: pixels at least half opaque are written with
// their straight (un-premultiplied) color, the rest are skipped.
func DrawImage(t Target, img image.Image, x, y int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := t.Width(), t.Height()

	// Fast path for *image.NRGBA: straight alpha, direct byte access.
	if n, ok := img.(*image.NRGBA); ok {
		for sy := b.Min.Y; sy < b.Max.Y; sy++ {
			dy := y + sy - b.Min.Y
			if dy < 0 || dy >= h {
				continue
			}
			off := n.PixOffset(b.Min.X, sy)
			for sx := b.Min.X; sx < b.Max.X; sx, off = sx+1, off+4 {
				dx := x + sx - b.Min.X
				if dx < 0 || dx >= w || n.Pix[off+3] < 0x80 {
					continue
				}
				t.Set(dx, dy, Color{n.Pix[off], n.Pix[off+1], n.Pix[off+2]})
			}
		}
		return
	}

	for sy := b.Min.Y; sy < b.Max.Y; sy++ {
		dy := y + sy - b.Min.Y
		if dy < 0 || dy >= h {
			continue
		}
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			dx := x + sx - b.Min.X
			if dx < 0 || dx >= w {
				continue
			}
			r, g, bl, a := img.At(sx, sy).RGBA()
			if a < alphaCutoff {
				continue
			}
			if a != 0xFFFF {
				r = r * 0xFFFF / a
				g = g * 0xFFFF / a
				bl = bl * 0xFFFF / a
			}
			t.Set(dx, dy, Color{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		}
	}
}
