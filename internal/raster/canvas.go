// Package raster implements the pixel surface strokes are drawn on.
//
// A Canvas is an NRGBA buffer guarded by a mutex. Strokes arrive either as
// independent segments (DrawSegment), each composited on its own, or as one
// continuous path (BeginPath/PathTo/EndPath) whose segments are merged into a
// single coverage mask so overlapping joins are not painted twice.
package raster

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/vector"

	"LocalPaint/internal/state"
)

// Canvas is the drawing surface. The zero value is not ready; use NewCanvas.
type Canvas struct {
	mu         sync.RWMutex
	img        *image.NRGBA
	background color.NRGBA
	mode       Compositing
	path       *openPath
	z          *vector.Rasterizer
}

// openPath is the state of a continuous path between BeginPath and EndPath.
type openPath struct {
	pen  Pen
	mode Compositing
	last state.Point
	base []uint8
	mask *image.Alpha
}

// NewCanvas returns a width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	c := &Canvas{
		background: color.NRGBAModel.Convert(bg).(color.NRGBA),
		z:          vector.NewRasterizer(1, 1),
	}
	if width > 0 && height > 0 {
		c.img = image.NewNRGBA(image.Rect(0, 0, width, height))
		c.fill()
	}
	return c
}

// Ready reports whether the canvas has pixels to draw on.
func (c *Canvas) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.img != nil
}

// Close releases the pixel buffer. Later drawing calls are no-ops.
func (c *Canvas) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.img = nil
	c.path = nil
}

func (c *Canvas) Bounds() image.Rectangle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.img == nil {
		return image.Rectangle{}
	}
	return c.img.Rect
}

func (c *Canvas) Background() color.NRGBA {
	return c.background
}

func (c *Canvas) SetCompositing(m Compositing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = m
}

func (c *Canvas) Compositing() Compositing {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// FillBackground paints every pixel with the background color.
func (c *Canvas) FillBackground() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil {
		return
	}
	c.path = nil
	c.fill()
}

func (c *Canvas) fill() {
	bg := c.background
	for i := 0; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i], c.img.Pix[i+1], c.img.Pix[i+2], c.img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
}

// DrawSegment strokes the straight segment from-to on its own using the
// current compositing mode.
func (c *Canvas) DrawSegment(from, to state.Point, pen Pen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil {
		return
	}
	if pen.Crisp {
		from, to = pixelCenter(from), pixelCenter(to)
	}
	cv, ok := segmentCoverage(c.z, c.img.Rect, from, to, pen.Width)
	if !ok {
		return
	}
	stamp(c.img, cv, pen, c.mode)
}

// BeginPath starts a continuous path at p. Nothing is painted until PathTo.
func (c *Canvas) BeginPath(p state.Point, pen Pen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil {
		return
	}
	base := make([]uint8, len(c.img.Pix))
	copy(base, c.img.Pix)
	c.path = &openPath{
		pen:  pen,
		mode: c.mode,
		last: p,
		base: base,
		mask: image.NewAlpha(c.img.Rect),
	}
}

// PathTo extends the open path to p. The region under the new segment is
// recomposited from the pixels saved at BeginPath through the merged mask.
func (c *Canvas) PathTo(p state.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil || c.path == nil {
		return
	}
	op := c.path
	from := op.last
	op.last = p
	cv, ok := segmentCoverage(c.z, c.img.Rect, from, p, op.pen.Width)
	if !ok {
		return
	}
	r := cv.bounds().Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := cv.at(x, y)
			mi := op.mask.PixOffset(x, y)
			if m <= op.mask.Pix[mi] {
				continue
			}
			op.mask.Pix[mi] = m
			i := c.img.PixOffset(x, y)
			blend(c.img.Pix, op.base, i, op.pen.Color, op.pen.Alpha*float64(m)/255, op.mode)
		}
	}
}

// EndPath closes the open path, if any.
func (c *Canvas) EndPath() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = nil
}

// PixelAt returns the stored color at (x, y), transparent outside the canvas.
func (c *Canvas) PixelAt(x, y int) color.NRGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.img == nil || !image.Pt(x, y).In(c.img.Rect) {
		return color.NRGBA{}
	}
	return c.img.NRGBAAt(x, y)
}

// Image returns a copy of the current pixels, nil when not ready.
func (c *Canvas) Image() *image.NRGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.img == nil {
		return nil
	}
	return cloneNRGBA(c.img)
}

// Flattened returns a copy of the pixels composited over the background,
// for encoders without an alpha channel.
func (c *Canvas) Flattened() *image.NRGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.img == nil {
		return nil
	}
	return flatten(c.img, c.background)
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
