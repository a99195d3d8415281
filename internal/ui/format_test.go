package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "10px", FormatBrushSize(10))
	assert.Equal(t, "1px", FormatBrushSize(1))

	assert.Equal(t, "100%", FormatOpacity(1))
	assert.Equal(t, "10%", FormatOpacity(0.1))
	assert.Equal(t, "55%", FormatOpacity(0.55))

	assert.Equal(t, "#AABBCC", FormatColorHex("#aabbcc"))
	assert.Equal(t, "#ABC", FormatColorHex("#abc"))
}
