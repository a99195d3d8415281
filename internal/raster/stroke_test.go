package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/vector"

	"LocalPaint/internal/state"
)

func TestSegmentCoverageBounds(t *testing.T) {
	z := vector.NewRasterizer(1, 1)
	clip := image.Rect(0, 0, 100, 100)

	cv, ok := segmentCoverage(z, clip, state.Pt(10, 10), state.Pt(30, 10), 4)
	assert.True(t, ok)
	b := cv.bounds()
	assert.True(t, b.In(clip))
	assert.LessOrEqual(t, b.Min.X, 8)
	assert.GreaterOrEqual(t, b.Max.X, 32)
	assert.Equal(t, uint8(0xff), cv.at(20, 10))
	assert.Equal(t, uint8(0), cv.at(20, b.Min.Y))
}

func TestSegmentCoverageDot(t *testing.T) {
	z := vector.NewRasterizer(1, 1)
	cv, ok := segmentCoverage(z, image.Rect(0, 0, 50, 50), state.Pt(25, 25), state.Pt(25, 25), 10)
	assert.True(t, ok)
	assert.Equal(t, uint8(0xff), cv.at(25, 25))
	assert.Equal(t, uint8(0xff), cv.at(22, 25))
	assert.Equal(t, uint8(0), cv.at(20, 20), "corner of the box lies outside the disc")
}

func TestSegmentCoverageClipped(t *testing.T) {
	z := vector.NewRasterizer(1, 1)
	_, ok := segmentCoverage(z, image.Rect(0, 0, 10, 10), state.Pt(50, 50), state.Pt(60, 60), 4)
	assert.False(t, ok)

	_, ok = segmentCoverage(z, image.Rect(0, 0, 10, 10), state.Pt(1, 1), state.Pt(2, 2), 0)
	assert.False(t, ok)
}

func TestPixelCenter(t *testing.T) {
	assert.Equal(t, state.Pt(0.5, 0.5), pixelCenter(state.Pt(0, 0)))
	assert.Equal(t, state.Pt(3.5, 7.5), pixelCenter(state.Pt(3.9, 7.1)))
}
