// Package app is the demo application: a scene that exercises every
// rasterizer primitive and reacts to the keyboard and mouse, plus the
// full-screen noise pattern.
package app

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"pixelframe/asset"
	"pixelframe/console"
	"pixelframe/engine"
	"pixelframe/input"
	"pixelframe/internal/logging"
	"pixelframe/raster"

	"golang.org/x/image/font"
)

const maxMarks = 64

// Options configures Demo.
type Options struct {
	// Sprite is an image file drawn at the cursor. Empty uses a built-in
	// sprite.
	Sprite string
	// Console, if set, is drawn in the bottom-left corner every frame.
	Console *console.Console
	// Seed feeds the noise scene.
	Seed uint64
	// Noise starts in the noise scene.
	Noise bool
}

// Demo implements engine.App.
type Demo struct {
	opts Options

	sprite image.Image
	face   font.Face
	rng    *rand.Rand

	noise  bool
	angle  float64
	offset raster.Point
	marks  []raster.Point
}

var _ engine.App = (*Demo)(nil)

func New(opts Options) *Demo {
	return &Demo{opts: opts, noise: opts.Noise}
}

func (d *Demo) OnCreate(f *engine.Frame) error {
	if d.opts.Sprite != "" {
		img, err := asset.Load(d.opts.Sprite)
		if err != nil {
			return fmt.Errorf("app: sprite: %w", err)
		}
		d.sprite = img
	} else {
		d.sprite = defaultSprite()
	}
	face, err := raster.GoRegular(14)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	d.face = face
	d.rng = rand.New(rand.NewPCG(d.opts.Seed, d.opts.Seed^0x9e3779b97f4a7c15))

	b := d.sprite.Bounds()
	logging.Logger().Info("app: created",
		"width", f.Buffer.Width(), "height", f.Buffer.Height(),
		"sprite", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))
	return nil
}

func (d *Demo) OnUpdate(f *engine.Frame) error {
	d.handleInput(f)

	if d.noise {
		d.drawNoise(f.Buffer)
	} else {
		d.angle += f.Delta.Seconds()
		d.drawScene(f)
	}

	if c := d.opts.Console; c != nil {
		_, h := c.Size()
		c.Draw(f.Buffer, 2, f.Buffer.Height()-h-2)
	}
	return nil
}

// Noise reports whether the noise scene is active.
func (d *Demo) Noise() bool { return d.noise }

// Marks returns the points placed with the left mouse button.
func (d *Demo) Marks() []raster.Point { return d.marks }

func (d *Demo) handleInput(f *engine.Frame) {
	log := logging.Logger()

	if f.Key(input.KeySpace).Pressed {
		d.noise = !d.noise
		log.Debug("app: scene", "noise", d.noise)
	}

	switch {
	case f.Key(input.KeyLeft).Held:
		d.offset.X--
	case f.Key(input.KeyRight).Held:
		d.offset.X++
	}
	switch {
	case f.Key(input.KeyUp).Held:
		d.offset.Y--
	case f.Key(input.KeyDown).Held:
		d.offset.Y++
	}
	if f.Key(input.KeyHome).Pressed {
		d.offset = raster.Point{}
	}

	x, y := f.Cursor()
	if f.Mouse(input.MouseLeft).Pressed {
		if len(d.marks) == maxMarks {
			d.marks = d.marks[1:]
		}
		d.marks = append(d.marks, raster.Pt(x, y))
		log.Debug("app: mark", "x", x, "y", y, "count", len(d.marks))
	}
	if f.Mouse(input.MouseRight).Pressed {
		d.marks = d.marks[:0]
		log.Debug("app: marks cleared")
	}
}

func (d *Demo) drawNoise(b *raster.Buffer) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			v := d.rng.Uint32()
			b.Set(x, y, raster.RGB(uint8(v), uint8(v>>8), uint8(v>>16)))
		}
	}
}

func (d *Demo) drawScene(f *engine.Frame) {
	b := f.Buffer
	w, h := b.Width(), b.Height()
	center := raster.Pt(w/2, h/2).Add(d.offset)

	// Line fan from the center.
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		x := center.X + int(math.Round(math.Cos(a)*float64(h)/3))
		y := center.Y + int(math.Round(math.Sin(a)*float64(h)/3))
		raster.DrawLine(b, center.X, center.Y, x, y, raster.Gray)
	}

	raster.FillRectangle(b, 4, 12, w/6, h/6, raster.Blue)
	raster.DrawRect(b, 4, 12, w/6, h/6, raster.Cyan)

	// Spinning triangle around the center.
	r := float64(min(w, h)) / 5
	var tri [3]raster.Point
	for i := range tri {
		a := d.angle + float64(i)*2*math.Pi/3
		tri[i] = raster.Pt(
			center.X+int(math.Round(math.Cos(a)*r)),
			center.Y+int(math.Round(math.Sin(a)*r)),
		)
	}
	raster.FillTriangle(b, tri[0], tri[1], tri[2], raster.Red)
	raster.DrawTriangle(b, tri[0], tri[1], tri[2], raster.Yellow)

	q := raster.Pt(w-w/5, h/5)
	raster.FillQuad(b, q.Add(raster.Pt(0, -h/8)), q.Add(raster.Pt(w/10, 0)),
		q.Add(raster.Pt(0, h/8)), q.Add(raster.Pt(-w/10, 0)), raster.Green)

	c := raster.Pt(w-w/6, h-h/4)
	raster.FillCircle(b, c.X, c.Y, h/10, raster.Purple)
	raster.DrawCircle(b, c.X, c.Y, h/8, raster.Magenta)

	// Marks joined into a polyline.
	for i, m := range d.marks {
		if i > 0 {
			p := d.marks[i-1]
			raster.DrawLine(b, p.X, p.Y, m.X, m.Y, raster.Orange)
		}
		raster.FillRectangle(b, m.X-1, m.Y-1, 2, 2, raster.White)
	}

	x, y := f.Cursor()
	sb := d.sprite.Bounds()
	raster.DrawImage(b, d.sprite, x-sb.Dx()/2, y-sb.Dy()/2)

	const heading = "pixelframe"
	raster.DrawFace(b, d.face, w-raster.FaceWidth(d.face, heading)-4, 16, heading, raster.White)
	raster.DrawText(b, 2, 2, fmt.Sprintf("frame %d  cursor %d,%d", f.Number, x, y), raster.White)
}

// defaultSprite is a 16x16 orange disc with a white rim on a transparent
// background.
func defaultSprite() image.Image {
	const size = 16
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-size/2, y-size/2
			switch d2 := dx*dx + dy*dy; {
			case d2 <= 5*5:
				img.SetNRGBA(x, y, raster.Orange.NRGBA())
			case d2 <= 7*7:
				img.SetNRGBA(x, y, raster.White.NRGBA())
			}
		}
	}
	return img
}
