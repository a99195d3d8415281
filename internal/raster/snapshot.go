package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"LocalPaint/internal/state"
)

// ErrNotReady is returned by snapshot operations on a closed or empty canvas.
var ErrNotReady = errors.New("canvas not ready")

var snapshotEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// ExportSnapshot encodes the current pixels losslessly.
func (c *Canvas) ExportSnapshot() (state.Snapshot, error) {
	img := c.Image()
	if img == nil {
		return state.Snapshot{}, ErrNotReady
	}
	var buf bytes.Buffer
	if err := snapshotEncoder.Encode(&buf, img); err != nil {
		return state.Snapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return state.NewSnapshot(buf.Bytes(), img.Rect.Dx(), img.Rect.Dy()), nil
}

// DecodeSnapshot turns a snapshot back into an image. It does not touch the
// canvas, so it may run on any goroutine.
func (c *Canvas) DecodeSnapshot(ctx context.Context, s state.Snapshot) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := png.Decode(s.Reader())
	if err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.ID(), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// ApplyImage replaces the canvas pixels with img, scaling when the sizes
// differ. Any open path is dropped.
func (c *Canvas) ApplyImage(img image.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.img == nil {
		return ErrNotReady
	}
	c.path = nil
	sr := img.Bounds()
	if src, ok := img.(*image.NRGBA); ok && sr == c.img.Rect && src.Stride == c.img.Stride {
		copy(c.img.Pix, src.Pix)
		return nil
	}
	if sr.Size() == c.img.Rect.Size() {
		draw.Draw(c.img, c.img.Rect, img, sr.Min, draw.Src)
		return nil
	}
	draw.ApproxBiLinear.Scale(c.img, c.img.Rect, img, sr, draw.Src, nil)
	return nil
}
