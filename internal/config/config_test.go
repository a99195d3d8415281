package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/state"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.Equal(t, 6, cfg.Colors.RecentCapacity)
	assert.Len(t, cfg.Colors.Palette, 7)
	for _, row := range cfg.Colors.Palette {
		assert.Len(t, row, 5)
	}
}

func TestDefaultPaletteIsNotShared(t *testing.T) {
	cfg := Default()
	cfg.Colors.Palette[0][0] = "#123456"
	assert.Equal(t, "#FF0000", DefaultPalette[0][0])
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg, err := Decode(`
[canvas]
width = 320

[colors]
recent_capacity = 10
recent = ["#abc", "#112233"]

[brush]
tool = "pencil"
color = "#00ff00"
`)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height, "unset keys keep their defaults")
	assert.Equal(t, 10, cfg.Colors.RecentCapacity)

	s := cfg.Settings()
	assert.Equal(t, state.ToolPencil, s.Tool())
	assert.Equal(t, state.Color("#00FF00"), s.Color())
	if diff := cmp.Diff([]state.Color{"#AABBCC", "#112233"}, s.Recent().Colors()); diff != "" {
		t.Errorf("recent colors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, s.Recent().Capacity())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]string{
		"zero width":      "[canvas]\nwidth = 0",
		"bad background":  "[canvas]\nbackground = \"white\"",
		"history limit":   "[history]\nlimit = 0",
		"recent capacity": "[colors]\nrecent_capacity = 0",
		"recent color":    "[colors]\nrecent = [\"#ZZZZZZ\"]",
		"palette color":   "[colors]\npalette = [[\"#FFF\", \"nope\"]]",
		"tool":            "[brush]\ntool = \"spray\"",
		"brush width":     "[brush]\nwidth = 51",
		"opacity":         "[brush]\nopacity = 0.05",
		"brush color":     "[brush]\ncolor = \"#12\"",
		"filename":        "[export]\nfilename = \" \"",
		"format":          "[export]\nformat = \"gif\"",
		"jpeg quality":    "[export]\njpeg_quality = 101",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg, err := Decode(doc)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode("[canvas\nwidth = 3")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	cfg, unknown, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "paint.toml")
	require.NoError(t, os.WriteFile(path, []byte("[history]\nlimit = 20\nflavor = \"x\"\n"), 0o644))
	cfg, unknown, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.History.Limit)
	assert.Equal(t, []string{"history.flavor"}, unknown)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSettingsDoNotRecordStartingColor(t *testing.T) {
	s := Default().Settings()
	assert.Equal(t, state.Black, s.Color())
	assert.False(t, s.Recent().Contains("#000000"))
	assert.Equal(t, state.DefaultRecent, s.Recent().Colors())
}

func TestSettingsFallBackOnBadBrushColor(t *testing.T) {
	cfg := Default()
	cfg.Brush.Color = "crimson"
	s := cfg.Settings()
	assert.Equal(t, state.Black, s.Color())
	assert.Equal(t, state.DefaultRecent, s.Recent().Colors())
}

func TestBackgroundColor(t *testing.T) {
	assert.Equal(t, state.Color("#FFFFFF"), Default().BackgroundColor())
	cfg := Default()
	cfg.Canvas.Background = "#000"
	assert.Equal(t, state.Color("#000000"), cfg.BackgroundColor())
}
