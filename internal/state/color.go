package state

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for input that is not "#" followed by 3 or 6 hex digits.
var ErrInvalidColor = errors.New("invalid color")

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is a normalized "#RRGGBB" value. Two Colors built through ParseColor
// compare equal with == whatever case the input used.
type Color string

const Black Color = "#000000"

// ParseColor validates s against the hex grammar and normalizes it:
// short forms are expanded and digits upper-cased.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !hexColor.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	digits := strings.ToUpper(s[1:])
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	return Color("#" + digits), nil
}

// MustParseColor is like ParseColor but panics on bad input.
// It is meant for compile-time constants such as palettes.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFrom converts any color.Color to its opaque hex form.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B))
}

// Equal compares two colors ignoring case. Unparseable input never matches.
func (c Color) Equal(other string) bool {
	o, err := ParseColor(other)
	if err != nil {
		return false
	}
	n, err := ParseColor(string(c))
	if err != nil {
		return false
	}
	return n == o
}

func (c Color) String() string { return string(c) }

// NRGBA returns the opaque RGB value of c. An unnormalized or empty Color
// yields opaque black.
func (c Color) NRGBA() color.NRGBA {
	n, err := ParseColor(string(c))
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	v, _ := strconv.ParseUint(string(n[1:]), 16, 32)
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
