// Package console is a scrolling text terminal drawn over a frame. Text is
// laid out by tinyterm into the console's own pixel buffer, which is then
// blitted onto the frame with its background left transparent.
//
// tinyterm handles newline and the ANSI sequences ESC[<n>m (colors),
// ESC[K (erase in line) and ESC[<n>C, D and G (cursor motion).
package console

import (
	"sync"
	"unicode/utf8"

	"pixelframe/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

// Config sets up a Console.
type Config struct {
	// Cols and Rows are the size in character cells.
	Cols, Rows int
	// Font defaults to raster.Font.
	Font tinyfont.Fonter
	// LineHeight is the height of a text row in pixels. Zero uses the
	// font's Y advance.
	LineHeight int
	// Baseline is the offset from the top of a row to the glyph baseline.
	// Zero uses LineHeight-1.
	Baseline int
}

// Console is safe for concurrent use so it can sit behind a logger.
type Console struct {
	mu sync.Mutex

	buf  *raster.Buffer
	term *tinyterm.Terminal
	cfg  tinyterm.Config

	cellW, cellH int

	// pending holds the leading bytes of a rune split across writes.
	pending []byte
	dirty   bool
}

// New returns an empty console.
func New(cfg Config) *Console {
	if cfg.Font == nil {
		cfg.Font = raster.Font
	}
	if cfg.LineHeight <= 0 {
		cfg.LineHeight = int(cfg.Font.GetYAdvance())
	}
	if cfg.Baseline <= 0 {
		cfg.Baseline = cfg.LineHeight - 1
	}
	cfg.Cols = max(cfg.Cols, 1)
	cfg.Rows = max(cfg.Rows, 1)

	_, w := tinyfont.LineWidth(cfg.Font, "0")
	cellW := max(int(w), 1)

	buf := raster.NewBuffer(cfg.Cols*cellW, cfg.Rows*cfg.LineHeight)
	c := &Console{
		buf:  buf,
		term: tinyterm.NewTerminal(raster.NewDisplayer(buf)),
		cfg: tinyterm.Config{
			Font:              cfg.Font,
			FontHeight:        int16(cfg.LineHeight),
			FontOffset:        int16(cfg.Baseline),
			UseSoftwareScroll: true,
		},
		cellW: cellW,
		cellH: cfg.LineHeight,
	}
	c.reset()
	return c
}

func (c *Console) reset() {
	c.buf.Clear(raster.Black)
	c.term.Configure(&c.cfg)
	c.pending = c.pending[:0]
}

// Size returns the console size in pixels.
func (c *Console) Size() (w, h int) { return c.buf.Width(), c.buf.Height() }

// Write renders p. It never fails. A rune cut off at the end of p is held
// until the next Write completes it.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := p
	if len(c.pending) > 0 {
		data = append(c.pending, p...)
		c.pending = nil
	}
	cut := len(data) - partialRune(data)
	if cut < len(data) {
		c.pending = append([]byte(nil), data[cut:]...)
	}
	if cut > 0 {
		_, _ = c.term.Write(data[:cut])
		c.dirty = true
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (c *Console) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Clear blanks the console, homes the cursor and resets colors.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
	c.dirty = true
}

// Draw copies the console onto t with its top-left corner at (x, y).
// Black cells are left untouched.
func (c *Console) Draw(t raster.Target, x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, h := c.buf.Width(), c.buf.Height()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			if v := c.buf.Get(cx, cy); v != raster.Black {
				t.Set(x+cx, y+cy, v)
			}
		}
	}
	c.dirty = false
}

// Dirty reports whether the console changed since the last Draw.
func (c *Console) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// partialRune returns the length of an incomplete UTF-8 sequence at the end
// of p, or 0.
func partialRune(p []byte) int {
	for n := 1; n < utf8.UTFMax && n <= len(p); n++ {
		b := p[len(p)-n]
		if utf8.RuneStart(b) {
			if b >= utf8.RuneSelf && !utf8.FullRune(p[len(p)-n:]) {
				return n
			}
			return 0
		}
	}
	return 0
}
