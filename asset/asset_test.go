package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
	"time"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(100 * y), B: 200, A: 255})
		}
	}
	return img
}

func sameOpaque(t *testing.T, got image.Image, want *image.NRGBA) {
	t.Helper()
	if got.Bounds().Size() != want.Bounds().Size() {
		t.Fatalf("size = %v, want %v", got.Bounds().Size(), want.Bounds().Size())
	}
	n := ToNRGBA(got)
	for y := 0; y < want.Rect.Dy(); y++ {
		for x := 0; x < want.Rect.Dx(); x++ {
			if g, w := n.NRGBAAt(x, y), want.NRGBAAt(x, y); g != w {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{".WEBP", WebP},
		{"shot.bmp", BMP},
		{"frames/0001.tif", TIFF},
		{"tiff", TIFF},
	} {
		got, err := ParseFormat(tc.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("ParseFormat(gif) err = %v, want ErrUnknownFormat", err)
	}
}

func TestEncodeDecodeLossless(t *testing.T) {
	src := testImage()
	for _, f := range []Format{PNG, WebP, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			img, name, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if name != f.String() {
				t.Fatalf("Decode() format = %q, want %q", name, f.String())
			}
			sameOpaque(t, img, src)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	src := testImage()
	path := filepath.Join(t.TempDir(), "nested", "sprite.png")
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sameOpaque(t, got, src)

	if err := Save(filepath.Join(t.TempDir(), "x.gif"), src); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save(.gif) err = %v, want ErrUnknownFormat", err)
	}
}

func TestScale(t *testing.T) {
	src := testImage()
	got := Scale(src, 3)
	if got.Bounds().Dx() != 9 || got.Bounds().Dy() != 6 {
		t.Fatalf("Scale() bounds = %v, want 9x6", got.Bounds())
	}
	r, g, b, _ := got.At(8, 5).RGBA()
	w := src.NRGBAAt(2, 1)
	if uint8(r>>8) != w.R || uint8(g>>8) != w.G || uint8(b>>8) != w.B {
		t.Fatalf("Scale() corner = %d,%d,%d, want %v", r>>8, g>>8, b>>8, w)
	}
	if Scale(src, 1) != image.Image(src) {
		t.Fatalf("Scale(1) copied the image")
	}
}

func TestEncodeAnimation(t *testing.T) {
	var buf bytes.Buffer
	frames := []image.Image{testImage(), testImage()}
	if err := EncodeAnimation(&buf, frames, 50*time.Millisecond); err != nil {
		t.Fatalf("EncodeAnimation: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("RIFF")) {
		t.Fatalf("EncodeAnimation() output is not a RIFF container")
	}
	if err := EncodeAnimation(&buf, nil, time.Second); err == nil {
		t.Fatalf("EncodeAnimation(nil) succeeded, want error")
	}
}

func TestDecodeTGA(t *testing.T) {
	// 2x1 uncompressed true-color, 24 bpp, top-left origin.
	data := []byte{
		0, 0, 2, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		2, 0, 1, 0,
		24, 0x20,
		30, 20, 10, // BGR
		255, 0, 0,
	}
	img, name, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if name != "tga" {
		t.Fatalf("Decode() format = %q, want tga", name)
	}
	n := ToNRGBA(img)
	if got := n.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("pixel (0,0) = %v", got)
	}
	if got := n.NRGBAAt(1, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Fatalf("pixel (1,0) = %v", got)
	}
}
