package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Source is the surface being exported.
type Source interface {
	// Image returns the stored pixels, transparency included.
	Image() *image.NRGBA
	// Flattened returns the pixels composited over the background.
	Flattened() *image.NRGBA
}

type Options struct {
	JPEGQuality int
}

func (o Options) jpegQuality() int {
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return jpeg.DefaultQuality
	}
	return o.JPEGQuality
}

// Encode writes src to w in format f. Formats that keep an alpha channel
// get the stored pixels; the others get the flattened image.
func Encode(w io.Writer, src Source, f Format, opts Options) error {
	var img *image.NRGBA
	switch f {
	case PNG, TIFF:
		img = src.Image()
	default:
		img = src.Flattened()
	}
	if img == nil {
		return fmt.Errorf("export %s: surface not ready", f)
	}

	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: opts.jpegQuality()})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case PDF:
		err = writePDF(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", f, err)
	}
	return nil
}
