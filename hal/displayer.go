package hal

import (
	"context"
	"image/color"

	"pixelframe/input"
	"pixelframe/internal/logging"
	"pixelframe/raster"

	"tinygo.org/x/drivers"
)

// DisplayerSurface presents frames on a tinygo drivers.Displayer, such as an
// SPI panel. Only cells that changed since the previous frame are sent.
type DisplayerSurface struct {
	d     drivers.Displayer
	queue *input.Queue
	prev  []raster.Color
	w, h  int
	title string
}

// NewDisplayerSurface wraps d. Input is drained from q, which may be nil.
func NewDisplayerSurface(d drivers.Displayer, q *input.Queue) *DisplayerSurface {
	return &DisplayerSurface{d: d, queue: q}
}

func (s *DisplayerSurface) Poll(raw *input.Raw) {
	if s.queue != nil {
		s.queue.Drain(raw)
	}
}

func (s *DisplayerSurface) Present(v raster.View) error {
	dw, dh := s.d.Size()
	w := min(v.Width(), int(dw))
	h := min(v.Height(), int(dh))
	full := false
	if w != s.w || h != s.h || s.prev == nil {
		s.w, s.h = w, h
		s.prev = make([]raster.Color, w*h)
		full = true
	}

	for y := 0; y < h; y++ {
		row := s.prev[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			c := v.Get(x, y)
			if !full && row[x] == c {
				continue
			}
			row[x] = c
			s.d.SetPixel(int16(x), int16(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return s.d.Display()
}

// SetTitle records the title; panels have nowhere to show it.
func (s *DisplayerSurface) SetTitle(title string) {
	if title != s.title {
		s.title = title
		logging.Logger().Debug("hal: displayer title", "title", title)
	}
}

// RunDisplayer runs the loop at a fixed rate, presenting to d and reading
// input from q.
func RunDisplayer(ctx context.Context, d drivers.Displayer, q *input.Queue, cfg HeadlessConfig, newLoop NewLoop) error {
	return RunHeadless(ctx, NewDisplayerSurface(d, q), cfg, newLoop)
}
