package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"LocalPaint/internal/state"
)

// kappa places cubic control points for a quarter-circle approximation.
const kappa = 0.5522847498

// coverage is an anti-aliased mask for one stroked segment. Pixel (x, y) of
// the canvas maps to mask pixel (x-origin.X, y-origin.Y).
type coverage struct {
	mask   *image.Alpha
	origin image.Point
}

func (cv coverage) bounds() image.Rectangle {
	return cv.mask.Bounds().Add(cv.origin)
}

func (cv coverage) at(x, y int) uint8 {
	return cv.mask.Pix[(y-cv.origin.Y)*cv.mask.Stride+(x-cv.origin.X)]
}

// segmentCoverage rasterizes the round-capped segment a-b of the given width,
// clipped to clip. ok is false when nothing falls inside clip.
func segmentCoverage(z *vector.Rasterizer, clip image.Rectangle, a, b state.Point, width float64) (cv coverage, ok bool) {
	hw := width / 2
	if hw <= 0 {
		return coverage{}, false
	}
	r := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-hw))-1,
		int(math.Floor(math.Min(a.Y, b.Y)-hw))-1,
		int(math.Ceil(math.Max(a.X, b.X)+hw))+1,
		int(math.Ceil(math.Max(a.Y, b.Y)+hw))+1,
	).Intersect(clip)
	if r.Empty() {
		return coverage{}, false
	}

	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	la := state.Pt(a.X-ox, a.Y-oy)
	lb := state.Pt(b.X-ox, b.Y-oy)

	// All sub-paths share one orientation so their coverage adds up
	// instead of cancelling where they overlap.
	addCircle(z, la, hw)
	if dx, dy := lb.X-la.X, lb.Y-la.Y; dx != 0 || dy != 0 {
		addCircle(z, lb, hw)
		l := math.Hypot(dx, dy)
		nx, ny := -dy/l*hw, dx/l*hw
		z.MoveTo(float32(la.X+nx), float32(la.Y+ny))
		z.LineTo(float32(la.X-nx), float32(la.Y-ny))
		z.LineTo(float32(lb.X-nx), float32(lb.Y-ny))
		z.LineTo(float32(lb.X+nx), float32(lb.Y+ny))
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return coverage{mask: mask, origin: r.Min}, true
}

func addCircle(z *vector.Rasterizer, c state.Point, r float64) {
	k := kappa * r
	pt := func(x, y float64) (float32, float32) { return float32(c.X + x), float32(c.Y + y) }

	z.MoveTo(pt(r, 0))
	cubeTo(z, pt, r, k, k, r, 0, r)
	cubeTo(z, pt, -k, r, -r, k, -r, 0)
	cubeTo(z, pt, -r, -k, -k, -r, 0, -r)
	cubeTo(z, pt, k, -r, r, -k, r, 0)
	z.ClosePath()
}

func cubeTo(z *vector.Rasterizer, pt func(x, y float64) (float32, float32), x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := pt(x1, y1)
	bx, by := pt(x2, y2)
	cx, cy := pt(x3, y3)
	z.CubeTo(ax, ay, bx, by, cx, cy)
}

// pixelCenter snaps p onto the center of the pixel containing it.
func pixelCenter(p state.Point) state.Point {
	return state.Pt(math.Floor(p.X)+0.5, math.Floor(p.Y)+0.5)
}
