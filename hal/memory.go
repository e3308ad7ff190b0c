package hal

import (
	"image"

	"pixelframe/input"
	"pixelframe/raster"
)

// MemorySurface keeps the last presented frame in memory. It has no window;
// input arrives through its queue.
type MemorySurface struct {
	queue  *input.Queue
	last   *image.RGBA
	title  string
	frames uint64
}

// NewMemorySurface returns a surface whose input is drained from q.
// q may be nil.
func NewMemorySurface(q *input.Queue) *MemorySurface {
	return &MemorySurface{queue: q}
}

func (s *MemorySurface) Poll(raw *input.Raw) {
	if s.queue != nil {
		s.queue.Drain(raw)
	}
}

func (s *MemorySurface) Present(v raster.View) error {
	if s.last == nil || s.last.Bounds() != v.Bounds() {
		s.last = image.NewRGBA(v.Bounds())
	}
	v.CopyRGBA(s.last.Pix)
	s.frames++
	return nil
}

func (s *MemorySurface) SetTitle(title string) { s.title = title }

// Last returns the most recently presented frame, or nil.
func (s *MemorySurface) Last() *image.RGBA { return s.last }

// Title returns the last title set.
func (s *MemorySurface) Title() string { return s.title }

// Frames returns the number of frames presented.
func (s *MemorySurface) Frames() uint64 { return s.frames }
