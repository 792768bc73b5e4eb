package export

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDF(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 80, 50))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 4, G: 101, B: 130, A: 255}), image.Point{}, draw.Src)

	var out bytes.Buffer
	require.NoError(t, PDF(&out, img, Meta{Title: "Drawing", Creator: "DrawPad", Session: "abc"}))

	doc := out.Bytes()
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Contains(t, string(doc), "%%EOF")
}

func TestPDFRejectsEmptyImage(t *testing.T) {
	var out bytes.Buffer
	err := PDF(&out, image.NewRGBA(image.Rectangle{}), Meta{})
	assert.Error(t, err)
	assert.Zero(t, out.Len())
}
