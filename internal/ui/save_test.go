package ui

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawPad/internal/paint"
	"DrawPad/internal/state"
)

type memWriter struct {
	bytes.Buffer
	uri    fyne.URI
	fail   error
	closed bool
}

func (m *memWriter) Write(p []byte) (int, error) {
	if m.fail != nil {
		return 0, m.fail
	}
	return m.Buffer.Write(p)
}

func (m *memWriter) Close() error {
	m.closed = true
	return nil
}

func (m *memWriter) URI() fyne.URI { return m.uri }

func newMemWriter(t *testing.T, name string) *memWriter {
	return &memWriter{uri: storage.NewFileURI(filepath.Join(t.TempDir(), name))}
}

func newTestSaver(t *testing.T) (*Saver, *paint.Buffer) {
	t.Helper()
	buf, err := paint.NewBuffer(60, 40, bgColor)
	require.NoError(t, err)
	paint.Dot(buf, state.Point{X: 30, Y: 20}, 8, inkColor)
	return NewSaver(nil, buf, state.NewSession(), "Drawing Example", "drawing.png"), buf
}

func TestSaverWritePNG(t *testing.T) {
	s, buf := newTestSaver(t)
	w := newMemWriter(t, "drawing.png")

	require.NoError(t, s.WritePNG(w))
	assert.True(t, w.closed)

	img, err := png.Decode(&w.Buffer)
	require.NoError(t, err)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			require.Equal(t, buf.At(x, y), color.RGBAModel.Convert(img.At(x, y)))
		}
	}
}

func TestSaverWriteFailureKeepsBuffer(t *testing.T) {
	s, buf := newTestSaver(t)
	before := buf.Clone()
	w := newMemWriter(t, "drawing.png")
	w.fail = errors.New("disk full")

	err := s.WritePNG(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, w.fail)
	assert.Contains(t, err.Error(), "drawing.png")
	assert.True(t, w.closed)
	assert.Equal(t, before.Pix, buf.Image().Pix)
}

func TestSaverWritePDF(t *testing.T) {
	s, _ := newTestSaver(t)
	w := newMemWriter(t, "drawing.pdf")

	require.NoError(t, s.WritePDF(w))
	assert.True(t, w.closed)
	assert.True(t, bytes.HasPrefix(w.Bytes(), []byte("%PDF-")))
}

func TestPDFName(t *testing.T) {
	assert.Equal(t, "drawing.pdf", pdfName("drawing.png"))
	assert.Equal(t, "sketch.pdf", pdfName("sketch"))
}

func TestTools(t *testing.T) {
	s, _ := newTestSaver(t)
	tools := newTools(s)
	require.Len(t, tools, 2)

	assert.Equal(t, "save", tools[0].name)
	assert.Equal(t, fyne.KeyS, tools[0].shortcut.KeyName)
	assert.Equal(t, fyne.KeyModifierControl, tools[0].shortcut.Modifier)

	assert.Equal(t, "export", tools[1].name)
	assert.Equal(t, fyne.KeyE, tools[1].shortcut.KeyName)
}
