package engine

import (
	"context"
	"image"

	"LocalPaint/internal/raster"
	"LocalPaint/internal/state"
)

// Surface is the pixel buffer the engine draws on. It is owned by the host;
// *raster.Canvas is the implementation used by the app.
type Surface interface {
	Ready() bool
	Bounds() image.Rectangle

	SetCompositing(raster.Compositing)
	DrawSegment(from, to state.Point, pen raster.Pen)
	BeginPath(p state.Point, pen raster.Pen)
	PathTo(p state.Point)
	EndPath()
	FillBackground()

	ExportSnapshot() (state.Snapshot, error)
	// DecodeSnapshot must not touch the surface; it runs off the caller's goroutine.
	DecodeSnapshot(ctx context.Context, s state.Snapshot) (image.Image, error)
	ApplyImage(img image.Image) error

	Image() *image.NRGBA
	Flattened() *image.NRGBA
}

var _ Surface = (*raster.Canvas)(nil)
