package hal

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"

	"pixelframe/asset"
	"pixelframe/internal/logging"
	"pixelframe/raster"
)

// SnapshotConfig controls SnapshotWriter.
type SnapshotConfig struct {
	Dir string
	// Every writes one file per Every presented frames. Zero means 1.
	Every  uint64
	Format asset.Format
	// Scale enlarges each cell to Scale×Scale pixels.
	Scale  int
	Prefix string
}

// SnapshotWriter is a Surface decorator that also saves presented frames as
// image files.
type SnapshotWriter struct {
	Surface
	cfg   SnapshotConfig
	frame uint64
	files int
}

// NewSnapshotWriter wraps s.
func NewSnapshotWriter(s Surface, cfg SnapshotConfig) *SnapshotWriter {
	if cfg.Every == 0 {
		cfg.Every = 1
	}
	if cfg.Format == 0 {
		cfg.Format = asset.PNG
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "frame"
	}
	return &SnapshotWriter{Surface: s, cfg: cfg}
}

// Present forwards v and writes it to disk on every Every-th frame.
func (w *SnapshotWriter) Present(v raster.View) error {
	err := w.Surface.Present(v)
	n := w.frame
	w.frame++
	if n%w.cfg.Every != 0 {
		return err
	}

	name := fmt.Sprintf("%s-%06d%s", w.cfg.Prefix, n, w.cfg.Format.Ext())
	path := filepath.Join(w.cfg.Dir, name)
	if serr := asset.Save(path, asset.Scale(v.RGBA(), w.cfg.Scale)); serr != nil {
		return errors.Join(err, fmt.Errorf("hal: snapshot: %w", serr))
	}
	w.files++
	logging.Logger().Debug("hal: snapshot", "path", path)
	return err
}

// Files returns the number of files written.
func (w *SnapshotWriter) Files() int { return w.files }

// Recorder is a Surface decorator that keeps presented frames in memory and
// writes them as one animated WebP on Flush.
type Recorder struct {
	Surface
	every  uint64
	limit  int
	delay  time.Duration
	scale  int
	frame  uint64
	frames []image.Image
}

// NewRecorder wraps s. It keeps one frame out of every, at most limit frames
// (zero means no limit), each shown for delay in the animation.
func NewRecorder(s Surface, every uint64, limit int, delay time.Duration, scale int) *Recorder {
	if every == 0 {
		every = 1
	}
	return &Recorder{Surface: s, every: every, limit: limit, delay: delay, scale: scale}
}

func (r *Recorder) Present(v raster.View) error {
	err := r.Surface.Present(v)
	n := r.frame
	r.frame++
	if n%r.every == 0 && (r.limit == 0 || len(r.frames) < r.limit) {
		r.frames = append(r.frames, asset.Scale(v.RGBA(), r.scale))
	}
	return err
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int { return len(r.frames) }

// Flush encodes the recorded frames to out and drops them.
func (r *Recorder) Flush(out io.Writer) error {
	if len(r.frames) == 0 {
		return nil
	}
	if err := asset.EncodeAnimation(out, r.frames, r.delay); err != nil {
		return fmt.Errorf("hal: recorder: %w", err)
	}
	r.frames = nil
	return nil
}
