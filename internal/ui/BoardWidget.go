package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/state"
)

// BoardWidget shows the drawing surface and forwards pointer input to the
// engine. Widget positions are scaled onto surface pixels, so the board
// may be laid out at any size.
type BoardWidget struct {
	widget.BaseWidget
	engine *engine.Engine
	pixels image.Point
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(e *engine.Engine, bounds image.Rectangle) *BoardWidget {
	b := &BoardWidget{engine: e, pixels: bounds.Size()}
	b.ExtendBaseWidget(b)
	return b
}

// toSurface maps a position inside the widget to surface coordinates.
func (b *BoardWidget) toSurface(pos fyne.Position) state.Point {
	size := b.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return state.Pt(float64(pos.X), float64(pos.Y))
	}
	return state.Pt(
		float64(pos.X)*float64(b.pixels.X)/float64(size.Width),
		float64(pos.Y)*float64(b.pixels.Y)/float64(size.Height),
	)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.engine.PointerDown(b.toSurface(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.engine.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.engine.PointerMove(b.toSurface(e.Position))
}

// DragEnd can arrive instead of MouseUp; ending twice is harmless.
func (b *BoardWidget) DragEnd() {
	b.engine.PointerUp()
}

func (b *BoardWidget) MouseOut() {
	b.engine.PointerLeave()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.engine.Display())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	return &boardWidgetRenderer{board: b, image: img}
}

type boardWidgetRenderer struct {
	board *BoardWidget
	image *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *boardWidgetRenderer) Refresh() {
	if img := r.board.engine.Display(); img != nil {
		r.image.Image = img
	}
	r.image.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.pixels.X), float32(r.board.pixels.Y))
}

func (r *boardWidgetRenderer) Destroy() {}
