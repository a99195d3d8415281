package state

import "math"

const (
	MinWidth   = 1
	MaxWidth   = 50
	MinOpacity = 0.10
	MaxOpacity = 1.00

	// Opacity slider range in percent.
	MinOpacityPercent  = 10
	MaxOpacityPercent  = 100
	OpacityPercentStep = 5

	DefaultWidth   = 10
	DefaultOpacity = 1.0
)

// ToolSettings holds the current tool, width, opacity and color.
// Setters keep width and opacity inside their ranges; SetColor records
// accepted colors in the attached Recency list.
type ToolSettings struct {
	tool    Tool
	width   int
	opacity float64
	color   Color
	recent  *Recency
}

// NewToolSettings returns the defaults: brush, width 10, full opacity, black.
// recent may be nil.
func NewToolSettings(recent *Recency) *ToolSettings {
	return &ToolSettings{
		tool:    ToolBrush,
		width:   DefaultWidth,
		opacity: DefaultOpacity,
		color:   Black,
		recent:  recent,
	}
}

func (s *ToolSettings) Tool() Tool       { return s.tool }
func (s *ToolSettings) Width() int       { return ClampWidth(s.width) }
func (s *ToolSettings) Opacity() float64 { return ClampOpacity(s.opacity) }
func (s *ToolSettings) Color() Color     { return s.color }
func (s *ToolSettings) Recent() *Recency { return s.recent }

// OpacityPercent is the opacity as shown on the percentage slider.
func (s *ToolSettings) OpacityPercent() int {
	return int(math.Round(s.Opacity() * 100))
}

// SetTool selects t. Unknown values are ignored.
func (s *ToolSettings) SetTool(t Tool) {
	if t.Valid() {
		s.tool = t
	}
}

// SetWidth stores w clamped to [MinWidth, MaxWidth] and returns the stored value.
func (s *ToolSettings) SetWidth(w int) int {
	s.width = ClampWidth(w)
	return s.width
}

// SetOpacity stores o clamped to [MinOpacity, MaxOpacity] and returns the stored value.
func (s *ToolSettings) SetOpacity(o float64) float64 {
	s.opacity = ClampOpacity(o)
	return s.opacity
}

// SetOpacityPercent maps the percentage slider onto the opacity fraction.
func (s *ToolSettings) SetOpacityPercent(p int) float64 {
	return s.SetOpacity(OpacityFromPercent(p))
}

// SetColor validates v and makes it the active color. On failure the
// previous color stays active and the error wraps ErrInvalidColor.
func (s *ToolSettings) SetColor(v string) (Color, error) {
	c, err := ParseColor(v)
	if err != nil {
		return s.color, err
	}
	s.color = c
	if s.recent != nil {
		s.recent.Use(c)
	}
	return c, nil
}

// IsActive reports whether v names the active color, ignoring case.
func (s *ToolSettings) IsActive(v string) bool {
	return s.color.Equal(v)
}

// Clone returns an independent copy sharing the same Recency list.
func (s *ToolSettings) Clone() ToolSettings {
	return *s
}

func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

func ClampOpacity(o float64) float64 {
	if math.IsNaN(o) || o < MinOpacity {
		return MinOpacity
	}
	if o > MaxOpacity {
		return MaxOpacity
	}
	return o
}

// OpacityFromPercent snaps p to the slider step and converts it to a fraction.
func OpacityFromPercent(p int) float64 {
	if p < MinOpacityPercent {
		p = MinOpacityPercent
	}
	if p > MaxOpacityPercent {
		p = MaxOpacityPercent
	}
	p = int(math.Round(float64(p)/OpacityPercentStep)) * OpacityPercentStep
	return ClampOpacity(float64(p) / 100)
}

// SetInitialColor is SetColor without touching the recent list, for
// restoring a saved starting color.
func (s *ToolSettings) SetInitialColor(v string) error {
	c, err := ParseColor(v)
	if err != nil {
		return err
	}
	s.color = c
	return nil
}
