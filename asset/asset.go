// Package asset loads sprites and writes frames as image files.
//
// Decoding understands PNG, TGA, WebP, BMP and TIFF. Encoding
// writes PNG, WebP, BMP or TIFF.
package asset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an output image format.
type Format uint8

const (
	PNG Format = iota + 1
	WebP
	BMP
	TIFF
)

var ErrUnknownFormat = errors.New("asset: unknown image format")

var formatNames = map[Format]string{
	PNG:  "png",
	WebP: "webp",
	BMP:  "bmp",
	TIFF: "tiff",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Ext returns the file extension for f, with the leading dot.
func (f Format) Ext() string {
	if s, ok := formatNames[f]; ok {
		return "." + s
	}
	return ""
}

// ParseFormat accepts a format name ("png"), an extension (".webp") or a
// file name ("shot.bmp").
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if ext := filepath.Ext(name); ext != "" {
		name = ext
	}
	switch strings.TrimPrefix(name, ".") {
	case "png":
		return PNG, nil
	case "webp":
		return WebP, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Decode reads a PNG, WebP, BMP, TIFF or TGA image and returns it with the
// format name. TGA has no signature, so anything unrecognized is tried as
// TGA.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(12)

	var (
		img  image.Image
		name string
		err  error
	)
	switch {
	case bytes.HasPrefix(head, []byte("\x89PNG\r\n\x1a\n")):
		name = "png"
		img, err = png.Decode(br)
	case len(head) >= 12 && string(head[:4]) == "RIFF" && string(head[8:12]) == "WEBP":
		name = "webp"
		img, err = nativewebp.Decode(br)
	case bytes.HasPrefix(head, []byte("BM")):
		name = "bmp"
		img, err = bmp.Decode(br)
	case bytes.HasPrefix(head, []byte("II*\x00")), bytes.HasPrefix(head, []byte("MM\x00*")):
		name = "tiff"
		img, err = tiff.Decode(br)
	default:
		name = "tga"
		img, err = tga.Decode(br)
	}
	if err != nil {
		return nil, "", fmt.Errorf("asset: decode %s: %w", name, err)
	}
	return img, name, nil
}

// Load reads the image at path and converts it to NRGBA, the fast path for
// raster.DrawImage.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns img as *image.NRGBA, converting if needed. The result
// starts at the origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("asset: encode %s: %w", f, err)
	}
	return nil
}

// EncodeAnimation writes frames to w as a looping animated WebP, each
// frame shown for delay.
func EncodeAnimation(w io.Writer, frames []image.Image, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("asset: no frames to encode")
	}
	ms := uint(delay / time.Millisecond)
	ani := &nativewebp.Animation{
		Images:    frames,
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	for i := range ani.Durations {
		ani.Durations[i] = ms
	}
	if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
		return fmt.Errorf("asset: encode animation: %w", err)
	}
	return nil
}

// Save writes img to path in the format named by its extension, creating
// parent directories as needed.
func Save(path string, img image.Image) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("asset: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("asset: %w", err)
	}
	w := bufio.NewWriter(out)
	if err := Encode(w, img, f); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return fmt.Errorf("asset: %w", err)
	}
	return out.Close()
}

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// so each cell becomes a factor×factor block.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
