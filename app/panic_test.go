package app

import (
	"testing"
	"time"
	"unicode/utf8"

	"pixelframe/engine"
	"pixelframe/hal"
	"pixelframe/raster"
)

func TestGuardRecoversPanic(t *testing.T) {
	calls := 0
	inner := engine.Funcs{Update: func(f *engine.Frame) error {
		calls++
		if f.Number == 1 {
			panic("boom")
		}
		raster.FillRectangle(f.Buffer, 0, 0, 4, 4, raster.Red)
		return nil
	}}
	g := NewGuard(inner)

	surf := hal.NewMemorySurface(nil)
	ctl, err := engine.New(g, surf, engine.Config{Width: 120, Height: 60})
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	if err := ctl.SurfaceReady(); err != nil {
		t.Fatalf("SurfaceReady() error = %v", err)
	}

	now := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		now = now.Add(time.Millisecond)
		if err := ctl.Step(now); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	info := g.Panicked()
	if info == nil {
		t.Fatalf("Panicked() = nil")
	}
	if info.Frame != 1 || info.Value != "boom" || len(info.Stack) == 0 {
		t.Fatalf("Panicked() = frame %d value %v stack %d bytes", info.Frame, info.Value, len(info.Stack))
	}
	if calls != 2 {
		t.Fatalf("inner app called %d times, want 2", calls)
	}
	if !ctl.Running() {
		t.Fatalf("Running() = false after a recovered panic")
	}
	if got := surf.Frames(); got != 3 {
		t.Fatalf("Frames() = %d, want 3", got)
	}

	img := surf.Last()
	if got := img.RGBAAt(119, 59); got != raster.White.Opaque() {
		t.Fatalf("panic screen background = %v, want white", got)
	}
	ink := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			if img.RGBAAt(x, y) == raster.Black.Opaque() {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Fatalf("panic screen has no text")
	}
}

func TestPanicLines(t *testing.T) {
	lines := panicLines(&PanicInfo{Frame: 7, Value: "x"})
	if len(lines) != 3 || lines[1] != "frame 7: x" || lines[2] != "stack: unavailable" {
		t.Fatalf("panicLines() = %q", lines)
	}
}

func TestFitLine(t *testing.T) {
	line := "héllo wörld ünïcode"
	full := raster.TextWidth(raster.Font, line)
	for maxW := -1; maxW <= full+1; maxW++ {
		got := fitLine(raster.Font, line, maxW)
		if !utf8.ValidString(got) {
			t.Fatalf("fitLine(%d) = %q, want valid UTF-8", maxW, got)
		}
		if w := raster.TextWidth(raster.Font, got); got != "" && w > maxW {
			t.Fatalf("fitLine(%d) = %q, %d pixels wide", maxW, got, w)
		}
		if len(got) > len(line) || line[:len(got)] != got {
			t.Fatalf("fitLine(%d) = %q, want a prefix of %q", maxW, got, line)
		}
	}
	if got := fitLine(raster.Font, line, full); got != line {
		t.Fatalf("fitLine(full width) = %q, want %q", got, line)
	}
}
