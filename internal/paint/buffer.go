// Package paint holds the offscreen drawing surface and the stroke
// compositor that writes into it.
package paint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

var ErrInvalidSize = errors.New("paint: buffer dimensions must be positive")

// Buffer is a fixed-size RGBA surface holding the accumulated drawing.
// Its dimensions never change after creation.
type Buffer struct {
	img        *image.RGBA
	background color.RGBA
}

// NewBuffer allocates a width×height surface filled with background.
func NewBuffer(width, height int, background color.Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	bg := color.RGBAModel.Convert(background).(color.RGBA)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Buffer{img: img, background: bg}, nil
}

func (b *Buffer) Width() int { return b.img.Rect.Dx() }
func (b *Buffer) Height() int { return b.img.Rect.Dy() }
func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }
func (b *Buffer) Background() color.RGBA { return b.background }
func (b *Buffer) At(x, y int) color.RGBA { return b.img.RGBAAt(x, y) }

// Image exposes the live pixels. Callers must not keep writing to it outside
// of Composite.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Composite runs fn against the live pixels.
func (b *Buffer) Composite(fn func(dst *image.RGBA)) {
	fn(b.img)
}

// Clone returns a detached copy of the current contents.
func (b *Buffer) Clone() *image.RGBA {
	cp := image.NewRGBA(b.img.Rect)
	copy(cp.Pix, b.img.Pix)
	return cp
}

// WritePNG encodes the current contents as PNG.
func (b *Buffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, b.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the current contents to path. The buffer is left untouched
// whatever happens.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := b.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
