package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"pixelframe/app"
	"pixelframe/asset"
	"pixelframe/console"
	"pixelframe/engine"
	"pixelframe/hal"
	"pixelframe/internal/buildinfo"
	"pixelframe/internal/config"
	"pixelframe/internal/logging"
	"pixelframe/raster"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		f          config.Flags
		configPath string
		version    bool
	)
	flag.StringVar(&configPath, "config", "", "JSON config file.")
	flag.BoolVar(&f.Headless, "headless", false, "Run without a window.")
	flag.IntVar(&f.Hz, "hz", 0, "Frame rate (default 60).")
	flag.Uint64Var(&f.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run until stopped).")
	flag.IntVar(&f.Width, "width", 0, "Buffer width in cells (default 800).")
	flag.IntVar(&f.Height, "height", 0, "Buffer height in cells (default 600).")
	flag.IntVar(&f.Scale, "scale", 0, "Screen pixels per cell (default 2).")
	flag.BoolVar(&f.Fullscreen, "fullscreen", false, "Start fullscreen.")
	flag.StringVar(&f.Title, "title", "", "Application name shown in the title.")
	flag.StringVar(&f.SnapshotDir, "snapshot-dir", "", "Write presented frames to this directory.")
	flag.Uint64Var(&f.SnapshotEvery, "snapshot-every", 0, "Write one snapshot per N frames.")
	flag.StringVar(&f.SnapshotFormat, "snapshot-format", "", "Snapshot format: png, webp, bmp or tiff.")
	flag.StringVar(&f.Record, "record", "", "Record frames into an animated WebP file.")
	flag.StringVar(&f.Fbdev, "fbdev", "", "Present RGB565 frames to this framebuffer device or file.")
	flag.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error or off.")
	flag.BoolVar(&f.Console, "console", false, "Show log output in an on-screen console.")
	flag.StringVar(&f.Sprite, "sprite", "", "Image drawn at the mouse cursor.")
	flag.BoolVar(&f.Noise, "noise", false, "Start in the noise scene.")
	flag.BoolVar(&version, "version", false, "Print the version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Title("pixelframe"))
		return nil
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	cfg.Resolve(f)
	if err := cfg.Validate(); err != nil {
		return err
	}
	script, err := cfg.ScriptEvents()
	if err != nil {
		return err
	}

	var con *console.Console
	if cfg.Console {
		con = console.New(console.Config{Cols: max(cfg.Width/4-1, 1), Rows: 8})
	}
	if level, ok, _ := logging.ParseLevel(cfg.LogLevel); ok {
		var w io.Writer = os.Stderr
		if con != nil {
			w = io.MultiWriter(os.Stderr, con)
		}
		logging.SetLogger(logging.NewText(w, level))
	}

	demo := app.NewGuard(app.New(app.Options{
		Sprite:  cfg.Sprite,
		Console: con,
		Seed:    uint64(time.Now().UnixNano()),
		Noise:   cfg.Noise,
	}))
	loop := engine.Loop(demo, engine.Config{
		Name:       buildinfo.Title(cfg.Title),
		Width:      cfg.Width,
		Height:     cfg.Height,
		AutoClear:  true,
		ClearColor: raster.Black,
	})

	var rec *hal.Recorder
	wrap := func(s hal.Surface) hal.Surface {
		if cfg.SnapshotDir != "" {
			format, _ := asset.ParseFormat(cfg.SnapshotFormat)
			s = hal.NewSnapshotWriter(s, hal.SnapshotConfig{
				Dir:    cfg.SnapshotDir,
				Every:  cfg.SnapshotEvery,
				Format: format,
				Scale:  cfg.Scale,
			})
		}
		if cfg.Record != "" {
			rec = hal.NewRecorder(s, 1, cfg.RecordLimit, time.Second/time.Duration(cfg.Hz), cfg.Scale)
			s = rec
		}
		return s
	}

	if err := present(cfg, script, wrap, loop); err != nil {
		return err
	}
	if rec != nil {
		return writeRecording(cfg.Record, rec)
	}
	return nil
}

func present(cfg config.Config, script []hal.ScriptEvent, wrap func(hal.Surface) hal.Surface, loop hal.NewLoop) error {
	headless := hal.HeadlessConfig{Hz: cfg.Hz, Frames: cfg.Frames, Script: script}

	switch {
	case cfg.Fbdev != "":
		fb, err := os.OpenFile(cfg.Fbdev, os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return fmt.Errorf("fbdev: %w", err)
		}
		defer fb.Close()
		return runHeadless(wrap(hal.NewFramebufferSurface(fb, nil)), headless, loop)

	case cfg.Headless:
		return runHeadless(wrap(hal.NewMemorySurface(nil)), headless, loop)
	}

	return hal.RunWindow(hal.WindowConfig{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Scale:      cfg.Scale,
		TPS:        cfg.Hz,
		Fullscreen: cfg.Fullscreen,
		Title:      buildinfo.Title(cfg.Title),
		Wrap: func(s hal.Surface) hal.Surface {
			if len(script) > 0 {
				s = hal.NewScriptSurface(s, script)
			}
			return wrap(s)
		},
	}, loop)
}

func runHeadless(s hal.Surface, cfg hal.HeadlessConfig, loop hal.NewLoop) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := hal.RunHeadless(ctx, s, cfg, loop); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func writeRecording(path string, rec *hal.Recorder) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if err := rec.Flush(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
