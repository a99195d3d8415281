package raster

import (
	"fmt"
	"image/color"
)

// Compositing is the pixel-blend rule applied when a stroke is rendered.
type Compositing int

const (
	// SourceOver paints the pen color over what is already there.
	SourceOver Compositing = iota
	// DestinationOut removes coverage from the destination: D*(1-Sa).
	DestinationOut
)

func (c Compositing) String() string {
	switch c {
	case SourceOver:
		return "source-over"
	case DestinationOut:
		return "destination-out"
	default:
		return fmt.Sprintf("Compositing(%d)", int(c))
	}
}

// Pen describes how a segment is stroked. Caps and joins are always round.
type Pen struct {
	Width float64
	Alpha float64
	Color color.NRGBA
	// Crisp snaps segment endpoints to pixel centers so thin lines cover
	// whole pixels instead of straddling two rows.
	Crisp bool
}
