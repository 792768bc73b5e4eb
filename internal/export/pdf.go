package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Meta is written into the PDF document information.
type Meta struct {
	Title   string
	Creator string
	Session string
}

const imageName = "drawing"

// PDF renders img as a single page sized to it, one point per pixel.
func PDF(w io.Writer, img image.Image, meta Meta) error {
	size := img.Bounds().Size()
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("export: empty image %v", img.Bounds())
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return fmt.Errorf("export: encode page image: %w", err)
	}

	wd, ht := float64(size.X), float64(size.Y)
	// "L" swaps Wd and Ht, so custom sizes stay "P".
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	p.SetTitle(meta.Title, true)
	p.SetCreator(meta.Creator, true)
	if meta.Session != "" {
		p.SetSubject("session "+meta.Session, true)
	}
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(imageName, opts, &encoded)
	p.ImageOptions(imageName, 0, 0, wd, ht, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
