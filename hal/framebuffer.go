package hal

import (
	"fmt"
	"image"
	"io"

	"pixelframe/input"
	"pixelframe/raster"
)

// FramebufferSurface packs every frame as little-endian RGB565 and writes
// it to w, for raw framebuffer devices and panels fed over a pipe. If w is
// an io.Seeker it is rewound before each frame.
type FramebufferSurface struct {
	w     io.Writer
	queue *input.Queue

	width, height int
	stride        int
	buf           []byte
	title         string
}

// NewFramebufferSurface wraps w. Input is drained from q, which may be nil.
func NewFramebufferSurface(w io.Writer, q *input.Queue) *FramebufferSurface {
	return &FramebufferSurface{w: w, queue: q}
}

func (f *FramebufferSurface) Poll(raw *input.Raw) {
	if f.queue != nil {
		f.queue.Drain(raw)
	}
}

func (f *FramebufferSurface) Present(v raster.View) error {
	if v.Width() != f.width || v.Height() != f.height {
		f.width, f.height = v.Width(), v.Height()
		f.stride = f.width * 2
		f.buf = make([]byte, f.stride*f.height)
	}
	i := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := pack565(v.Get(x, y))
			f.buf[i] = byte(p)
			f.buf[i+1] = byte(p >> 8)
			i += 2
		}
	}

	if f.w == nil {
		return nil
	}
	if sk, ok := f.w.(io.Seeker); ok {
		if _, err := sk.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("hal: framebuffer: %w", err)
		}
	}
	if _, err := f.w.Write(f.buf); err != nil {
		return fmt.Errorf("hal: framebuffer: %w", err)
	}
	return nil
}

func (f *FramebufferSurface) SetTitle(title string) { f.title = title }

func (f *FramebufferSurface) Width() int       { return f.width }
func (f *FramebufferSurface) Height() int      { return f.height }
func (f *FramebufferSurface) StrideBytes() int { return f.stride }

// Buffer returns the packed RGB565 bytes of the last frame.
func (f *FramebufferSurface) Buffer() []byte { return f.buf }

// Image decodes the last packed frame. Channels lose their low bits.
func (f *FramebufferSurface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, j := 0, 0; i+1 < len(f.buf) && j+3 < len(img.Pix); i, j = i+2, j+4 {
		c := unpack565(uint16(f.buf[i]) | uint16(f.buf[i+1])<<8)
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xFF
	}
	return img
}

// pack565 keeps the top 5, 6 and 5 bits of the channels.
func pack565(c raster.Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// unpack565 widens each field back to 8 bits by repeating its high bits.
func unpack565(p uint16) raster.Color {
	r, g, b := uint8(p>>11&0x1f), uint8(p>>5&0x3f), uint8(p&0x1f)
	return raster.RGB(r<<3|r>>2, g<<2|g>>4, b<<3|b>>2)
}
