// Package config loads the application settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"LocalPaint/internal/export"
	"LocalPaint/internal/state"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	History History `toml:"history"`
	Colors  Colors  `toml:"colors"`
	Brush   Brush   `toml:"brush"`
	Export  Export  `toml:"export"`
}

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type History struct {
	Limit int `toml:"limit"`
}

type Colors struct {
	RecentCapacity int        `toml:"recent_capacity"`
	Recent         []string   `toml:"recent"`
	Palette        [][]string `toml:"palette"`
}

// Brush holds the tool settings the app starts with.
type Brush struct {
	Tool    string  `toml:"tool"`
	Width   int     `toml:"width"`
	Opacity float64 `toml:"opacity"`
	Color   string  `toml:"color"`
}

type Export struct {
	Filename    string `toml:"filename"`
	Format      string `toml:"format"`
	JPEGQuality int    `toml:"jpeg_quality"`
}

// DefaultPalette is the gradient grid offered by the color picker.
var DefaultPalette = [][]string{
	{"#FF0000", "#FF3333", "#FF6666", "#FF9999", "#FFCCCC"},
	{"#00FF00", "#33FF33", "#66FF66", "#99FF99", "#CCFFCC"},
	{"#0000FF", "#3333FF", "#6666FF", "#9999FF", "#CCCCFF"},
	{"#FFFF00", "#FFFF33", "#FFFF66", "#FFFF99", "#FFFFCC"},
	{"#FF00FF", "#FF33FF", "#FF66FF", "#FF99FF", "#FFCCFF"},
	{"#00FFFF", "#33FFFF", "#66FFFF", "#99FFFF", "#CCFFFF"},
	{"#000000", "#333333", "#666666", "#999999", "#CCCCCC"},
}

// Default returns the built-in configuration.
func Default() Config {
	recent := make([]string, len(state.DefaultRecent))
	for i, c := range state.DefaultRecent {
		recent[i] = c.String()
	}
	palette := make([][]string, len(DefaultPalette))
	for i, row := range DefaultPalette {
		palette[i] = append([]string(nil), row...)
	}
	return Config{
		Canvas:  Canvas{Width: 800, Height: 600, Background: "#FFFFFF"},
		History: History{Limit: state.DefaultHistoryLimit},
		Colors: Colors{
			RecentCapacity: state.DefaultRecentCapacity,
			Recent:         recent,
			Palette:        palette,
		},
		Brush: Brush{
			Tool:    state.ToolBrush.String(),
			Width:   state.DefaultWidth,
			Opacity: state.DefaultOpacity,
			Color:   state.Black.String(),
		},
		Export: Export{Filename: "painting", Format: "png", JPEGQuality: 90},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys the file sets but this package does not know are returned in
// unknown so the caller can warn about them.
func Load(path string) (cfg Config, unknown []string, err error) {
	cfg = Default()
	if path == "" {
		return cfg, nil, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), nil, fmt.Errorf("load config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), unknown, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, unknown, nil
}

// Decode parses TOML text over the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks every field that has a fixed range or grammar.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		bad("canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := state.ParseColor(c.Canvas.Background); err != nil {
		bad("canvas background %q", c.Canvas.Background)
	}
	if c.History.Limit < 1 {
		bad("history limit %d", c.History.Limit)
	}
	if c.Colors.RecentCapacity < 1 {
		bad("recent_capacity %d", c.Colors.RecentCapacity)
	}
	for _, s := range c.Colors.Recent {
		if _, err := state.ParseColor(s); err != nil {
			bad("recent color %q", s)
		}
	}
	for i, row := range c.Colors.Palette {
		for _, s := range row {
			if _, err := state.ParseColor(s); err != nil {
				bad("palette row %d color %q", i, s)
			}
		}
	}
	if _, err := state.ParseTool(c.Brush.Tool); err != nil {
		bad("brush tool %q", c.Brush.Tool)
	}
	if c.Brush.Width < state.MinWidth || c.Brush.Width > state.MaxWidth {
		bad("brush width %d", c.Brush.Width)
	}
	if c.Brush.Opacity < state.MinOpacity || c.Brush.Opacity > state.MaxOpacity {
		bad("brush opacity %g", c.Brush.Opacity)
	}
	if _, err := state.ParseColor(c.Brush.Color); err != nil {
		bad("brush color %q", c.Brush.Color)
	}
	if strings.TrimSpace(c.Export.Filename) == "" {
		bad("empty export filename")
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		bad("export format %q", c.Export.Format)
	}
	if c.Export.JPEGQuality < 1 || c.Export.JPEGQuality > 100 {
		bad("jpeg_quality %d", c.Export.JPEGQuality)
	}
	return errors.Join(errs...)
}

// RecentSeed returns the configured recent colors, skipping bad entries.
func (c Config) RecentSeed() []state.Color {
	out := make([]state.Color, 0, len(c.Colors.Recent))
	for _, s := range c.Colors.Recent {
		if col, err := state.ParseColor(s); err == nil {
			out = append(out, col)
		}
	}
	return out
}

// Settings builds the starting tool settings and their recent-color list.
func (c Config) Settings() *state.ToolSettings {
	s := state.NewToolSettings(state.NewRecency(c.Colors.RecentCapacity, c.RecentSeed()...))
	if t, err := state.ParseTool(c.Brush.Tool); err == nil {
		s.SetTool(t)
	}
	s.SetWidth(c.Brush.Width)
	s.SetOpacity(c.Brush.Opacity)
	if err := s.SetInitialColor(c.Brush.Color); err != nil {
		// Unvalidated config; fall back to the default brush color.
		_ = s.SetInitialColor(Default().Brush.Color)
	}
	return s
}

// BackgroundColor is the parsed canvas background, white when unparseable.
func (c Config) BackgroundColor() state.Color {
	bg, err := state.ParseColor(c.Canvas.Background)
	if err != nil {
		return "#FFFFFF"
	}
	return bg
}
