// Package config loads the renderer settings from a JSON file and merges
// command-line overrides on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"pixelframe/asset"
	"pixelframe/hal"
	"pixelframe/input"
	"pixelframe/internal/logging"
)

// Config holds the window, runner and output settings.
type Config struct {
	// Window
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Scale      int    `json:"scale"`
	Fullscreen bool   `json:"fullscreen"`

	// Runner
	Hz       int    `json:"hz"`
	Headless bool   `json:"headless"`
	Frames   uint64 `json:"frames"`
	Fbdev    string `json:"fbdev"`

	// Output
	SnapshotDir    string `json:"snapshot_dir"`
	SnapshotEvery  uint64 `json:"snapshot_every"`
	SnapshotFormat string `json:"snapshot_format"`
	Record         string `json:"record"`
	RecordLimit    int    `json:"record_limit"`

	// Diagnostics
	LogLevel string `json:"log_level"`
	Console  bool   `json:"console"`

	// Demo
	Sprite string `json:"sprite"`
	Noise  bool   `json:"noise"`

	Script []ScriptEntry `json:"script"`
}

// ScriptEntry is one scripted input change. Exactly one of Key, Button or
// Cursor should be set.
type ScriptEntry struct {
	Frame  uint64  `json:"frame"`
	Key    string  `json:"key,omitempty"`
	Button string  `json:"button,omitempty"`
	Down   bool    `json:"down,omitempty"`
	Cursor *[2]int `json:"cursor,omitempty"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Title          string
	Width, Height  int
	Scale          int
	Fullscreen     bool
	Hz             int
	Headless       bool
	Frames         uint64
	Fbdev          string
	SnapshotDir    string
	SnapshotEvery  uint64
	SnapshotFormat string
	Record         string
	LogLevel       string
	Console        bool
	Sprite         string
	Noise          bool
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Title:          "pixelframe",
		Width:          800,
		Height:         600,
		Scale:          2,
		Hz:             60,
		SnapshotEvery:  1,
		SnapshotFormat: "png",
		RecordLimit:    600,
		LogLevel:       "info",
	}
}

// Load reads a JSON config file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies the non-zero flags over c.
func (c *Config) Resolve(f Flags) {
	if f.Title != "" {
		c.Title = f.Title
	}
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Height > 0 {
		c.Height = f.Height
	}
	if f.Scale > 0 {
		c.Scale = f.Scale
	}
	if f.Fullscreen {
		c.Fullscreen = true
	}
	if f.Hz > 0 {
		c.Hz = f.Hz
	}
	if f.Headless {
		c.Headless = true
	}
	if f.Frames > 0 {
		c.Frames = f.Frames
	}
	if f.Fbdev != "" {
		c.Fbdev = f.Fbdev
	}
	if f.SnapshotDir != "" {
		c.SnapshotDir = f.SnapshotDir
	}
	if f.SnapshotEvery > 0 {
		c.SnapshotEvery = f.SnapshotEvery
	}
	if f.SnapshotFormat != "" {
		c.SnapshotFormat = f.SnapshotFormat
	}
	if f.Record != "" {
		c.Record = f.Record
	}
	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}
	if f.Console {
		c.Console = true
	}
	if f.Sprite != "" {
		c.Sprite = f.Sprite
	}
	if f.Noise {
		c.Noise = true
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("config: scale %d must be positive", c.Scale))
	}
	if c.Hz <= 0 {
		errs = append(errs, fmt.Errorf("config: hz %d must be positive", c.Hz))
	}
	if c.SnapshotDir != "" {
		if _, err := asset.ParseFormat(c.SnapshotFormat); err != nil {
			errs = append(errs, fmt.Errorf("config: snapshot_format: %w", err))
		}
	}
	if _, _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: log_level: %w", err))
	}
	if _, err := c.ScriptEvents(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ScriptEvents converts the script entries into runner events.
func (c Config) ScriptEvents() ([]hal.ScriptEvent, error) {
	out := make([]hal.ScriptEvent, 0, len(c.Script))
	for i, e := range c.Script {
		var ev input.Event
		switch {
		case e.Key != "":
			k, err := input.ParseKey(e.Key)
			if err != nil {
				return nil, fmt.Errorf("config: script[%d]: %w", i, err)
			}
			ev = input.KeyEvent(k, e.Down)
		case e.Button != "":
			b, err := input.ParseButton(e.Button)
			if err != nil {
				return nil, fmt.Errorf("config: script[%d]: %w", i, err)
			}
			ev = input.ButtonEvent(b, e.Down)
		case e.Cursor != nil:
			ev = input.CursorEvent(e.Cursor[0], e.Cursor[1])
		default:
			return nil, fmt.Errorf("config: script[%d]: no key, button or cursor", i)
		}
		out = append(out, hal.ScriptEvent{Frame: e.Frame, Event: ev})
	}
	return out, nil
}
