package export

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// writePDF places img on a single page sized to it, one pixel per point.
func writePDF(w io.Writer, img *image.NRGBA) error {
	wd, ht := float64(img.Rect.Dx()), float64(img.Rect.Dy())
	// Landscape would swap the custom size, so the page is always "P".
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("painting", opts, &buf)
	p.ImageOptions("painting", 0, 0, wd, ht, false, opts, 0, "")
	return p.Output(w)
}
