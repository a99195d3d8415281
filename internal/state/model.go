package state

import (
	"fmt"
	"strings"
)

// Point is a pointer position in surface pixel coordinates.
type Point struct{ X, Y float64 }

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Tool selects how a stroke is rendered.
type Tool int

const (
	ToolBrush Tool = iota
	ToolPencil
	ToolEraser
	// ToolLine and ToolRect are accepted in settings but draw freehand like the brush.
	ToolLine
	ToolRect
)

var toolNames = [...]string{
	ToolBrush:  "brush",
	ToolPencil: "pencil",
	ToolEraser: "eraser",
	ToolLine:   "line",
	ToolRect:   "rect",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Valid reports whether t is one of the declared tools.
func (t Tool) Valid() bool {
	return t >= ToolBrush && t <= ToolRect
}

// ParseTool maps a tool name (case-insensitive) to its Tool.
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return ToolBrush, fmt.Errorf("unknown tool %q", name)
}

// Tools lists the tools offered in the toolbox, in display order.
func Tools() []Tool {
	return []Tool{ToolBrush, ToolPencil, ToolEraser}
}
