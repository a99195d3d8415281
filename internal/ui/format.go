package ui

import (
	"fmt"
	"math"
	"strings"
)

// FormatBrushSize renders a width as shown next to the size slider.
func FormatBrushSize(size int) string {
	return fmt.Sprintf("%dpx", size)
}

// FormatOpacity renders a 0..1 opacity as a whole percentage.
func FormatOpacity(opacity float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(opacity*100)))
}

func FormatColorHex(c string) string {
	return strings.ToUpper(c)
}
