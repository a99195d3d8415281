package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/state"
)

// colorPanel lets the user pick the active color from the palette, the
// recent swatches, a hex entry or the native picker.
type colorPanel struct {
	engine *engine.Engine
	win    fyne.Window
	status func(string)

	current  *colorSwatch
	hexLabel *widget.Label
	recent   *fyne.Container
	swatches []*colorSwatch
	entry    *widget.Entry
	apply    *widget.Button
	picker   *widget.Button
}

func newColorPanel(e *engine.Engine, win fyne.Window, palette [][]string, status func(string)) *colorPanel {
	p := &colorPanel{
		engine:   e,
		win:      win,
		status:   status,
		hexLabel: widget.NewLabel(""),
		recent:   container.NewHBox(),
	}
	p.current = newColorSwatch(e.Settings().Color(), nil)

	for _, row := range palette {
		for _, s := range row {
			c, err := state.ParseColor(s)
			if err != nil {
				continue
			}
			p.swatches = append(p.swatches, newColorSwatch(c, p.choose))
		}
	}

	p.entry = widget.NewEntry()
	p.entry.SetPlaceHolder("#000000")
	p.entry.Validator = func(s string) error {
		_, err := state.ParseColor(s)
		return err
	}
	p.entry.OnSubmitted = func(s string) { p.applyEntry() }
	p.apply = widget.NewButton("Apply", p.applyEntry)
	p.picker = widget.NewButtonWithIcon("Picker", theme.ColorPaletteIcon(), p.showPicker)

	p.update()
	return p
}

// choose makes c the active color.
func (p *colorPanel) choose(c state.Color) {
	if _, err := p.engine.SetColor(c.String()); err != nil {
		p.status(err.Error())
		return
	}
	p.update()
}

func (p *colorPanel) applyEntry() {
	text := p.entry.Text
	c, err := p.engine.SetColor(text)
	if err != nil {
		p.status("Invalid color " + text)
		return
	}
	p.entry.SetText("")
	p.status("Color " + FormatColorHex(c.String()))
	p.update()
}

func (p *colorPanel) showPicker() {
	d := dialog.NewColorPicker("Pick a Color", "Brush color", func(c color.Color) {
		p.choose(state.ColorFrom(c))
	}, p.win)
	d.Advanced = true
	d.SetColor(p.engine.Settings().Color().NRGBA())
	d.Show()
}

// update redraws the current color, the recent list and the palette
// selection from the engine.
func (p *colorPanel) update() {
	active := p.engine.Settings().Color()
	p.current.SetColor(active)
	p.hexLabel.SetText(FormatColorHex(active.String()))

	recent := p.engine.RecentColors()
	objs := make([]fyne.CanvasObject, 0, len(recent))
	for _, c := range recent {
		s := newColorSwatch(c, p.choose)
		s.SetSelected(p.engine.IsActiveColor(c.String()))
		objs = append(objs, s)
	}
	p.recent.Objects = objs
	p.recent.Refresh()

	for _, s := range p.swatches {
		s.SetSelected(p.engine.IsActiveColor(s.Color.String()))
	}
}

func (p *colorPanel) object() fyne.CanvasObject {
	grid := container.NewGridWithColumns(5)
	for _, s := range p.swatches {
		grid.Add(s)
	}
	bold := fyne.TextStyle{Bold: true}
	return container.NewVBox(
		widget.NewLabelWithStyle("Color", fyne.TextAlignLeading, bold),
		container.NewHBox(p.current, p.hexLabel),
		widget.NewLabel("Recent"),
		p.recent,
		widget.NewLabel("Color Palette"),
		grid,
		widget.NewLabel("Custom"),
		container.NewBorder(nil, nil, nil, p.apply, p.entry),
		p.picker,
	)
}
