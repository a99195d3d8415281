package raster

import (
	"image"
	"image/color"
	"math"
)

// blend composites pen color c at effective alpha sa onto the NRGBA pixel
// at pix[i:i+4], reading the destination from src[i:i+4]. src and pix may
// alias. Formulas follow Porter-Duff on premultiplied values.
func blend(pix, src []uint8, i int, c color.NRGBA, sa float64, mode Compositing) {
	da := float64(src[i+3]) / 255
	switch mode {
	case DestinationOut:
		oa := da * (1 - sa)
		a8 := to8(oa)
		if a8 == 0 {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = 0, 0, 0, 0
			return
		}
		pix[i], pix[i+1], pix[i+2] = src[i], src[i+1], src[i+2]
		pix[i+3] = a8

	default:
		oa := sa + da*(1-sa)
		if oa <= 0 {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = 0, 0, 0, 0
			return
		}
		inv := da * (1 - sa)
		ch := func(s, d uint8) uint8 {
			return to8((float64(s)/255*sa + float64(d)/255*inv) / oa)
		}
		pix[i], pix[i+1], pix[i+2] = ch(c.R, src[i]), ch(c.G, src[i+1]), ch(c.B, src[i+2])
		pix[i+3] = to8(oa)
	}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// stamp composites one coverage mask straight onto dst.
func stamp(dst *image.NRGBA, cv coverage, pen Pen, mode Compositing) {
	r := cv.bounds().Intersect(dst.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := cv.at(x, y)
			if m == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			blend(dst.Pix, dst.Pix, i, pen.Color, pen.Alpha*float64(m)/255, mode)
		}
	}
}

// flatten returns img composited over an opaque background.
func flatten(img *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = bg.R, bg.G, bg.B, 0xff
		a := float64(img.Pix[i+3]) / 255
		if a == 0 {
			continue
		}
		c := color.NRGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
		blend(out.Pix, out.Pix, i, c, a, SourceOver)
	}
	return out
}
