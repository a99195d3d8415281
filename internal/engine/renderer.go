package engine

import (
	"LocalPaint/internal/raster"
	"LocalPaint/internal/state"
)

// session is the state of one pointer gesture.
type session struct {
	active     bool
	last       state.Point
	pen        raster.Pen
	continuous bool
}

// Renderer turns pointer positions into strokes on a Surface.
//
// Brush and eraser strokes are one continuous path with round caps and
// joins. Pencil strokes are a chain of independent one-pixel segments at
// full opacity. The eraser removes coverage (destination-out); every other
// tool paints source-over.
type Renderer struct {
	surface Surface
	s       session
}

func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// penFor derives the pen and compositing mode for the current settings.
// Line and rect draw freehand like the brush.
func penFor(settings *state.ToolSettings) (raster.Pen, raster.Compositing, bool) {
	pen := raster.Pen{
		Width: float64(settings.Width()),
		Alpha: settings.Opacity(),
		Color: settings.Color().NRGBA(),
	}
	switch settings.Tool() {
	case state.ToolPencil:
		pen.Width, pen.Alpha, pen.Crisp = 1, 1, true
		return pen, raster.SourceOver, false
	case state.ToolEraser:
		return pen, raster.DestinationOut, true
	default:
		return pen, raster.SourceOver, true
	}
}

// Begin opens a session at p. It does nothing and returns false when the
// surface is not ready.
func (r *Renderer) Begin(p state.Point, settings *state.ToolSettings) bool {
	if !r.surface.Ready() {
		return false
	}
	pen, mode, continuous := penFor(settings)
	r.surface.SetCompositing(mode)
	if continuous {
		r.surface.BeginPath(p, pen)
	}
	r.s = session{active: true, last: p, pen: pen, continuous: continuous}
	return true
}

// Continue draws from the last point to p. Without a session it is ignored.
func (r *Renderer) Continue(p state.Point) {
	if !r.s.active {
		return
	}
	if r.s.continuous {
		r.surface.PathTo(p)
	} else {
		r.surface.DrawSegment(r.s.last, p, r.s.pen)
	}
	r.s.last = p
}

// End closes the session and puts the surface back to source-over. It
// returns true when a session was open, meaning the caller should snapshot.
func (r *Renderer) End() bool {
	if !r.s.active {
		return false
	}
	if r.s.continuous {
		r.surface.EndPath()
	}
	r.surface.SetCompositing(raster.SourceOver)
	r.s = session{}
	return true
}

func (r *Renderer) Active() bool { return r.s.active }

// Last is the most recent point of the open session.
func (r *Renderer) Last() (state.Point, bool) {
	return r.s.last, r.s.active
}
