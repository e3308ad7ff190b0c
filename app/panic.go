package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"pixelframe/engine"
	"pixelframe/internal/logging"
	"pixelframe/raster"

	"tinygo.org/x/tinyfont"
)

// PanicInfo describes a recovered OnUpdate panic.
type PanicInfo struct {
	Frame uint64
	Value any
	Stack []byte
}

// Guard wraps an App so that a panic in OnUpdate replaces the scene with a
// panic report instead of tearing down the window. After the first panic
// the wrapped App is no longer called; the report is redrawn every frame
// until the loop stops.
type Guard struct {
	engine.App
	info  *PanicInfo
	lines []string
}

func NewGuard(a engine.App) *Guard { return &Guard{App: a} }

// Panicked returns the recovered panic, or nil.
func (g *Guard) Panicked() *PanicInfo { return g.info }

func (g *Guard) OnUpdate(f *engine.Frame) (err error) {
	if g.info != nil {
		drawPanic(f.Buffer, g.lines)
		return nil
	}

	defer func() {
		v := recover()
		if v == nil {
			return
		}
		g.info = &PanicInfo{Frame: f.Number, Value: v, Stack: debug.Stack()}
		g.lines = panicLines(g.info)

		log := logging.Logger()
		log.Error("app: panic", "frame", f.Number, "panic", fmt.Sprint(v))
		for _, line := range g.lines[2:] {
			log.Debug("app: panic stack", "line", line)
		}
		drawPanic(f.Buffer, g.lines)
	}()
	return g.App.OnUpdate(f)
}

func panicLines(info *PanicInfo) []string {
	lines := []string{
		"Panic:",
		fmt.Sprintf("frame %d: %v", info.Frame, info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}

// drawPanic paints black text on white, one line per text row, truncated
// to the buffer width. Lines that do not fit vertically are dropped.
func drawPanic(b *raster.Buffer, lines []string) {
	b.Clear(raster.White)

	lineH := int(raster.Font.GetYAdvance())
	if lineH <= 0 {
		return
	}
	y := 1
	for _, line := range lines {
		if y+lineH > b.Height() {
			return
		}
		raster.DrawText(b, 1, y, fitLine(raster.Font, line, b.Width()-2), raster.Black)
		y += lineH
	}
}

// fitLine drops whole runes from the end of s until it is at most maxW
// pixels wide.
func fitLine(f tinyfont.Fonter, s string, maxW int) string {
	w := raster.TextWidth(f, s)
	for len(s) > 0 && w > maxW {
		r, size := utf8.DecodeLastRuneInString(s)
		w -= raster.TextWidth(f, string(r))
		s = s[:len(s)-size]
	}
	return s
}
