package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)

	selected bool
	rect     *canvas.Rectangle
	border   *canvas.Rectangle
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	s.rect = canvas.NewRectangle(s.Color.NRGBA())
	s.rect.SetMinSize(fyne.NewSize(28, 28))

	s.border = canvas.NewRectangle(color.Transparent)
	s.applyBorder()

	return widget.NewSimpleRenderer(container.NewStack(s.rect, s.border))
}

func (s *colorSwatch) applyBorder() {
	if s.border == nil {
		return
	}
	if s.selected {
		s.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
}

// SetColor changes the displayed color.
func (s *colorSwatch) SetColor(c state.Color) {
	s.Color = c
	if s.rect != nil {
		s.rect.FillColor = c.NRGBA()
	}
	s.Refresh()
}

func (s *colorSwatch) SetSelected(v bool) {
	if s.selected == v {
		return
	}
	s.selected = v
	s.applyBorder()
	s.Refresh()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func toolIcon(t state.Tool) fyne.Resource {
	switch t {
	case state.ToolPencil:
		return theme.DocumentCreateIcon()
	case state.ToolEraser:
		return theme.DeleteIcon()
	default:
		return theme.ColorPaletteIcon()
	}
}

// toolbox holds the tool buttons and the size and opacity sliders.
type toolbox struct {
	engine  *engine.Engine
	buttons map[state.Tool]*widget.Button

	size         *widget.Slider
	sizeLabel    *widget.Label
	opacity      *widget.Slider
	opacityLabel *widget.Label
}

func newToolbox(e *engine.Engine) *toolbox {
	t := &toolbox{
		engine:       e,
		buttons:      make(map[state.Tool]*widget.Button),
		sizeLabel:    widget.NewLabel(""),
		opacityLabel: widget.NewLabel(""),
	}
	for _, tool := range state.Tools() {
		t.buttons[tool] = widget.NewButtonWithIcon(tool.String(), toolIcon(tool), func() {
			t.engine.SetTool(tool)
			t.update()
		})
	}

	t.size = widget.NewSlider(state.MinWidth, state.MaxWidth)
	t.size.Step = 1
	t.size.OnChanged = func(v float64) {
		w := t.engine.SetWidth(int(v))
		t.sizeLabel.SetText("Size: " + FormatBrushSize(w))
	}

	t.opacity = widget.NewSlider(state.MinOpacityPercent, state.MaxOpacityPercent)
	t.opacity.Step = state.OpacityPercentStep
	t.opacity.OnChanged = func(v float64) {
		o := t.engine.SetOpacityPercent(int(v))
		t.opacityLabel.SetText("Opacity: " + FormatOpacity(o))
	}

	t.update()
	return t
}

// update syncs the widgets with the engine's settings.
func (t *toolbox) update() {
	s := t.engine.Settings()
	for tool, b := range t.buttons {
		if tool == s.Tool() {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
	t.size.Value = float64(s.Width())
	t.size.Refresh()
	t.sizeLabel.SetText("Size: " + FormatBrushSize(s.Width()))
	t.opacity.Value = float64(s.OpacityPercent())
	t.opacity.Refresh()
	t.opacityLabel.SetText("Opacity: " + FormatOpacity(s.Opacity()))
}

func (t *toolbox) object() fyne.CanvasObject {
	tools := container.NewVBox()
	for _, tool := range state.Tools() {
		tools.Add(t.buttons[tool])
	}
	return container.NewVBox(
		widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		tools,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Brush Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		t.sizeLabel,
		container.New(layout.NewGridWrapLayout(fyne.NewSize(180, 35)), t.size),
		t.opacityLabel,
		container.New(layout.NewGridWrapLayout(fyne.NewSize(180, 35)), t.opacity),
	)
}
